package repository

import (
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type ServiceRepository = serviceRepo.ServiceRepository

type BookingRepository = bookingRepo.BookingRepository

type UserRepository = userRepo.UserRepository

type DoctorRepository = doctorRepo.DoctorRepository

// Repositories bundles one repository per collection.
type Repositories struct {
	Services ServiceRepository
	Bookings BookingRepository
	Users    UserRepository
	Doctors  DoctorRepository
}

// NewMongoRepositories builds every repository on top of one database handle.
func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Services: serviceRepo.NewMongoServiceRepo(db),
		Bookings: bookingRepo.NewMongoBookingRepo(db),
		Users:    userRepo.NewMongoUserRepo(db),
		Doctors:  doctorRepo.NewMongoDoctorRepo(db),
	}
}
