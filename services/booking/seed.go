package booking

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
	"05.00 PM - 05.30 PM",
	"05.30 PM - 06.00 PM",
}

// DefaultCatalog is the treatment list loaded by the seed command and the in-memory server.
func DefaultCatalog() []models.Service {
	names := []string{
		"Teeth Orthodontics",
		"Cosmetic Dentistry",
		"Teeth Cleaning",
		"Cavity Protection",
		"Pediatric Dental",
		"Oral Surgery",
	}
	services := make([]models.Service, len(names))
	for i, name := range names {
		services[i] = models.Service{Name: name, Slots: append([]string(nil), defaultSlots...)}
	}
	return services
}

// SeedServices upserts every service by name and returns how many were newly created.
func (s *DefaultBookingService) SeedServices(ctx context.Context, services []models.Service) (int, error) {
	created := 0
	for _, svc := range services {
		res, err := s.Services.UpsertByName(ctx, svc)
		if err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", svc.Name, err)
		}
		created += int(res.UpsertedCount)
	}
	return created, nil
}
