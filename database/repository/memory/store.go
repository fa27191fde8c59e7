// Package memory keeps every collection in process memory. It backs the
// --in-memory server mode and the handler tests.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds the four collections behind one mutex.
type Store struct {
	mu       sync.RWMutex
	services []models.Service
	bookings []models.Booking
	users    []models.User
	doctors  []models.Doctor
}

func NewStore() *Store {
	return &Store{}
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Services: &serviceRepo{s},
		Bookings: &bookingRepo{s},
		Users:    &userRepo{s},
		Doctors:  &doctorRepo{s},
	}
}

type serviceRepo struct{ s *Store }

func (r *serviceRepo) GetAll(_ context.Context) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Service, len(r.s.services))
	for i, svc := range r.s.services {
		svc.Slots = append([]string(nil), svc.Slots...)
		out[i] = svc
	}
	return out, nil
}

func (r *serviceRepo) GetAllNames(_ context.Context) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Service, len(r.s.services))
	for i, svc := range r.s.services {
		out[i] = models.Service{ID: svc.ID, Name: svc.Name}
	}
	return out, nil
}

func (r *serviceRepo) UpsertByName(_ context.Context, service models.Service) (models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slots := append([]string(nil), service.Slots...)
	for i := range r.s.services {
		if r.s.services[i].Name == service.Name {
			r.s.services[i].Slots = slots
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	id := primitive.NewObjectID()
	r.s.services = append(r.s.services, models.Service{ID: id, Name: service.Name, Slots: slots})
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

type bookingRepo struct{ s *Store }

func (r *bookingRepo) filter(match func(models.Booking) bool) []models.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

func (r *bookingRepo) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Date == date }), nil
}

func (r *bookingRepo) FindByPatient(_ context.Context, patient string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Patient == patient }), nil
}

func (r *bookingRepo) FindExisting(_ context.Context, treatment, date, patient string) (*models.Booking, error) {
	found := r.filter(func(b models.Booking) bool {
		return b.Treatment == treatment && b.Date == date && b.Patient == patient
	})
	if len(found) == 0 {
		return nil, database.ErrNotFound
	}
	return &found[0], nil
}

func (r *bookingRepo) Create(_ context.Context, booking *models.Booking) (models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.Treatment == booking.Treatment && b.Date == booking.Date && b.Patient == booking.Patient {
			return models.InsertResult{}, database.ErrDuplicate
		}
	}
	booking.ID = primitive.NewObjectID()
	r.s.bookings = append(r.s.bookings, *booking)
	return models.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

type userRepo struct{ s *Store }

func (r *userRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.User, len(r.s.users))
	for i, u := range r.s.users {
		out[i] = copyUser(u)
	}
	return out, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			found := copyUser(u)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, database.ErrNotFound)
}

func (r *userRepo) Upsert(_ context.Context, email string, update models.UserUpdate) (models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	fields := update.Fields(email, false)
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			modified := int64(0)
			if applyUserFields(&r.s.users[i], fields) {
				modified = 1
			}
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	u := models.User{ID: primitive.NewObjectID()}
	applyUserFields(&u, fields)
	r.s.users = append(r.s.users, u)
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: u.ID}, nil
}

// applyUserFields mirrors $set on a user and reports whether anything changed.
func applyUserFields(u *models.User, fields map[string]interface{}) bool {
	typed := map[string]*string{"email": &u.Email, "name": &u.Name, "role": &u.Role}
	changed := false
	for k, v := range fields {
		if field, ok := typed[k]; ok {
			s, _ := v.(string)
			if *field != s {
				*field = s
				changed = true
			}
			continue
		}
		if old, ok := u.Extra[k]; ok && reflect.DeepEqual(old, v) {
			continue
		}
		if u.Extra == nil {
			u.Extra = models.Extra{}
		}
		u.Extra[k] = v
		changed = true
	}
	return changed
}

func (r *userRepo) SetRole(_ context.Context, email, role string) (models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].Email == email {
			modified := int64(0)
			if r.s.users[i].Role != role {
				r.s.users[i].Role = role
				modified = 1
			}
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

type doctorRepo struct{ s *Store }

func (r *doctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Doctor, len(r.s.doctors))
	for i, d := range r.s.doctors {
		d.Extra = copyExtra(d.Extra)
		out[i] = d
	}
	return out, nil
}

func (r *doctorRepo) Create(_ context.Context, doctor *models.Doctor) (models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	doctor.ID = primitive.NewObjectID()
	stored := *doctor
	stored.Extra = copyExtra(doctor.Extra)
	r.s.doctors = append(r.s.doctors, stored)
	return models.InsertResult{Acknowledged: true, InsertedID: doctor.ID}, nil
}

func (r *doctorRepo) DeleteByEmail(_ context.Context, email string) (models.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, d := range r.s.doctors {
		if d.Email == email {
			r.s.doctors = append(r.s.doctors[:i], r.s.doctors[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

func copyUser(u models.User) models.User {
	u.Extra = copyExtra(u.Extra)
	return u
}

func copyExtra(extra models.Extra) models.Extra {
	if extra == nil {
		return nil
	}
	out := make(models.Extra, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}
