package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the guards routes compose.
type HandlerBundle struct {
	Tokens middleware.TokenValidator
	Admins middleware.AdminChecker
	// AdminPromotionGuard requires an admin caller on PUT /user/admin/:email.
	AdminPromotionGuard bool

	// Public endpoints
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Catalogue and booking endpoints
	GetServices        gin.HandlerFunc
	GetAvailable       gin.HandlerFunc
	GetPatientBookings gin.HandlerFunc
	CreateBooking      gin.HandlerFunc

	// User endpoints
	GetAllUsersHandler gin.HandlerFunc
	CheckAdminHandler  gin.HandlerFunc
	MakeAdminHandler   gin.HandlerFunc
	UpsertUserHandler  gin.HandlerFunc

	// Doctor endpoints
	AddDoctorHandler    gin.HandlerFunc
	GetDoctorsHandler   gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}
