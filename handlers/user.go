package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetAllUsersHandler handles GET /user. Any authenticated caller sees every user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		middleware.GetLogger(c).Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		middleware.GetLogger(c).Error("Failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check admin role", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.UserService.MakeAdmin(c.Request.Context(), email)
	if err != nil {
		middleware.GetLogger(c).Error("Failed to promote user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user role", "")
		return
	}
	middleware.GetLogger(c).Info("user promoted to admin", zap.String("email", email), zap.Int64("matched", result.MatchedCount))
	c.JSON(http.StatusOK, result)
}

// UpsertUserHandler handles PUT /user/:email: it records the login and returns a fresh token.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "invalid user", err.Error())
		return
	}
	if err := update.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user", err.Error())
		return
	}

	resp, err := h.UserService.Login(c.Request.Context(), email, update)
	if err != nil {
		middleware.GetLogger(c).Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save user", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
