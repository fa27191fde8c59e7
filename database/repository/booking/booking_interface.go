package bookingRepo

import (
	"context"

	"doctorsportal/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// FindByDate retrieves every booking on date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByPatient retrieves every booking of one patient.
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// FindExisting looks up the booking for (treatment, date, patient).
	// A miss returns database.ErrNotFound.
	FindExisting(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	// Create inserts a booking. A (treatment, date, patient) collision returns database.ErrDuplicate.
	Create(ctx context.Context, booking *models.Booking) (models.InsertResult, error)
}
