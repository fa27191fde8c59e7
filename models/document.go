package models

import "encoding/json"

// Extra holds the fields of a client-supplied document that have no typed
// field. It is stored inline so the documents keep every field they were
// written with.
type Extra map[string]interface{}

// flatten merges typed fields over the extra ones into a single JSON object.
func flatten(extra Extra, typed map[string]interface{}) ([]byte, error) {
	out := make(map[string]interface{}, len(extra)+len(typed))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range typed {
		out[k] = v
	}
	return json.Marshal(out)
}

// leftover decodes data as an object and drops the keys held by typed fields.
func leftover(data []byte, known ...string) (Extra, error) {
	var raw Extra
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}
