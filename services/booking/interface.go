package booking

import (
	"context"

	"doctorsportal/database/repository"
	"doctorsportal/models"
)

// BookingService covers the treatment catalogue, availability and bookings.
type BookingService interface {
	// ListServices returns the catalogue; full=false projects names only.
	ListServices(ctx context.Context, full bool) ([]models.Service, error)
	// GetAvailability returns every service with its open slots on date.
	GetAvailability(ctx context.Context, date string) ([]models.AvailableService, error)
	// CreateBooking inserts a booking or returns *DuplicateBookingError.
	CreateBooking(ctx context.Context, booking *models.Booking) (models.InsertResult, error)
	// GetPatientBookings returns every booking of one patient.
	GetPatientBookings(ctx context.Context, patient string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Services repository.ServiceRepository
	Bookings repository.BookingRepository
}
