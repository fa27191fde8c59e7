package doctor

import (
	"context"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

// DoctorService manages doctor records. Callers are expected to be admins.
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error)
	RemoveDoctor(ctx context.Context, email string) (models.DeleteResult, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error) {
	return s.Repo.Create(ctx, doctor)
}

func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, email string) (models.DeleteResult, error) {
	return s.Repo.DeleteByEmail(ctx, email)
}
