package serviceRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository defines methods for treatment data access.
type ServiceRepository interface {
	// GetAll retrieves every service with its full slot inventory.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetAllNames retrieves every service projected to its name.
	GetAllNames(ctx context.Context) ([]models.Service, error)
	// UpsertByName creates or replaces the slot inventory of a service.
	UpsertByName(ctx context.Context, service models.Service) (models.UpdateResult, error)
}
