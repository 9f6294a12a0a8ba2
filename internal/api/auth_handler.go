package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/room-booking-backend/internal/auth"
	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
	"github.com/smartcampus/room-booking-backend/internal/pkg/response"
	"github.com/smartcampus/room-booking-backend/internal/user"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewAuthHandler(userService user.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("fullName, email and password are required"))
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.FullName, req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "User registered successfully", NewUserResponse(u))
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("email and password are required"))
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		response.Error(c, apperror.Unavailable(err))
		return
	}

	response.JSON(c, http.StatusOK, "Login successful", LoginResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		response.Error(c, apperror.Unauthorized("unauthorized"))
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Profile fetched", NewUserResponse(u))
}
