package booking

import "doctorsportal/models"

// DuplicateBookingError is returned when the patient already holds a booking
// for the same treatment on the same date.
type DuplicateBookingError struct {
	Existing *models.Booking
}

func (e *DuplicateBookingError) Error() string {
	return "booking already exists for " + e.Existing.Treatment + " on " + e.Existing.Date
}
