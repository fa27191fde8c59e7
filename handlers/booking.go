package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the catalogue, availability and booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	// FullServiceList makes GET /service return slot inventories instead of names only.
	FullServiceList bool
}

func NewBookingHandler(svc booking.BookingService, fullServiceList bool) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, FullServiceList: fullServiceList}
}

// GetServices handles GET /service.
func (h *BookingHandler) GetServices(c *gin.Context) {
	services, err := h.BookingSvc.ListServices(c.Request.Context(), h.FullServiceList)
	if err != nil {
		middleware.GetLogger(c).Error("GetServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable handles GET /available?date=.
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	services, err := h.BookingSvc.GetAvailability(c.Request.Context(), date)
	if err != nil {
		middleware.GetLogger(c).Error("GetAvailable: failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetPatientBookings handles GET /booking?patient=. Patients only see their own bookings.
func (h *BookingHandler) GetPatientBookings(c *gin.Context) {
	patient := c.Query("patient")
	email, ok := middleware.DecodedEmail(c)
	if !ok || patient != email {
		utils.JSONError(c, http.StatusForbidden, "Forbidden Access", "")
		return
	}

	bookings, err := h.BookingSvc.GetPatientBookings(c.Request.Context(), patient)
	if err != nil {
		middleware.GetLogger(c).Error("GetPatientBookings: failed to fetch bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /booking. A duplicate is a 200 with success=false.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}

	result, err := h.BookingSvc.CreateBooking(c.Request.Context(), &req)
	var dup *booking.DuplicateBookingError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusOK, models.BookingResponse{Success: false, Booking: dup.Existing})
	case err != nil:
		middleware.GetLogger(c).Error("CreateBooking: failed to insert booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", "")
	default:
		middleware.GetLogger(c).Info("booking created",
			zap.String("treatment", req.Treatment),
			zap.String("date", req.Date),
			zap.String("slot", req.Slot),
		)
		c.JSON(http.StatusOK, models.BookingResponse{Success: true, Result: &result})
	}
}
