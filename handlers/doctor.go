package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-only doctor endpoints.
type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

func NewDoctorHandler(ds doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{DoctorService: ds}
}

func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor", err.Error())
		return
	}

	result, err := h.DoctorService.AddDoctor(c.Request.Context(), &req)
	if err != nil {
		middleware.GetLogger(c).Error("Failed to add doctor", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		middleware.GetLogger(c).Error("Failed to fetch doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.DoctorService.RemoveDoctor(c.Request.Context(), email)
	if err != nil {
		middleware.GetLogger(c).Error("Failed to delete doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
