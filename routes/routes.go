package routes

import (
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the greeting and health endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterBookingRoutes registers catalogue, availability and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.GetServices)
	r.GET("/available", hb.GetAvailable)
	r.POST("/booking", hb.CreateBooking)
	r.GET("/booking", middleware.VerifyJWT(hb.Tokens), hb.GetPatientBookings)
}

// RegisterUserRoutes registers user and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verifyJWT := middleware.VerifyJWT(hb.Tokens)

	r.GET("/user", verifyJWT, hb.GetAllUsersHandler)
	r.PUT("/user/:email", hb.UpsertUserHandler)
	r.GET("/admin/:email", hb.CheckAdminHandler)

	promote := []gin.HandlerFunc{verifyJWT}
	if hb.AdminPromotionGuard {
		promote = append(promote, middleware.VerifyAdmin(hb.Admins))
	}
	r.PUT("/user/admin/:email", append(promote, hb.MakeAdminHandler)...)
}

// RegisterDoctorRoutes registers the admin-only doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctor")
	{
		doctors.Use(middleware.VerifyJWT(hb.Tokens), middleware.VerifyAdmin(hb.Admins))
		doctors.POST("", hb.AddDoctorHandler)
		doctors.GET("", hb.GetDoctorsHandler)
		doctors.DELETE("/:email", hb.DeleteDoctorHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
