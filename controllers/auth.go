package controllers

import (
	"encoding/json"
	"net/http"

	"foodshare/apperrors"
	"foodshare/middleware"
	"foodshare/models"
	"foodshare/services"
	"foodshare/utils"
)

// AuthController handles registration, login and profile requests.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates an AuthController.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	UserType models.UserType `json:"userType" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid input"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.Error(w, err)
		return
	}

	user, err := c.auth.Register(r.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.M{"success": true, "user": user})
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid input"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.Error(w, err)
		return
	}

	token, user, err := c.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"success": true, "token": token, "user": user})
}

// Me handles GET /api/auth/me.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, apperrors.NewAuth("Authorization required"))
		return
	}

	user, err := c.auth.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"success": true, "user": user})
}
