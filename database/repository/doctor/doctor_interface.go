package doctorRepo

import (
	"context"

	"doctorsportal/models"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (models.DeleteResult, error)
}
