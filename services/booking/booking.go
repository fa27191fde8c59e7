package booking

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/database"
	"doctorsportal/models"
)

func (s *DefaultBookingService) ListServices(ctx context.Context, full bool) ([]models.Service, error) {
	if full {
		return s.Services.GetAll(ctx)
	}
	return s.Services.GetAllNames(ctx)
}

// GetAvailability loads the catalogue and the day's bookings and filters in
// memory. An empty date matches no bookings, so every slot is reported open.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, date string) ([]models.AvailableService, error) {
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %q: %w", date, err)
	}
	return ComputeAvailability(services, bookings), nil
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking *models.Booking) (models.InsertResult, error) {
	existing, err := s.Bookings.FindExisting(ctx, booking.Treatment, booking.Date, booking.Patient)
	switch {
	case err == nil:
		return models.InsertResult{}, &DuplicateBookingError{Existing: existing}
	case !errors.Is(err, database.ErrNotFound):
		return models.InsertResult{}, err
	}

	result, err := s.Bookings.Create(ctx, booking)
	if errors.Is(err, database.ErrDuplicate) {
		// Lost the race against an identical request; report the winner.
		existing, findErr := s.Bookings.FindExisting(ctx, booking.Treatment, booking.Date, booking.Patient)
		if findErr != nil {
			return models.InsertResult{}, fmt.Errorf("booking conflict but existing booking unreadable: %w", findErr)
		}
		return models.InsertResult{}, &DuplicateBookingError{Existing: existing}
	}
	if err != nil {
		return models.InsertResult{}, err
	}
	return result, nil
}

func (s *DefaultBookingService) GetPatientBookings(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.Bookings.FindByPatient(ctx, patient)
}
