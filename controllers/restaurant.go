package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/apperrors"
	"foodshare/services"
	"foodshare/utils"
)

// RestaurantController handles restaurant requests.
type RestaurantController struct {
	restaurants *services.RestaurantService
}

// NewRestaurantController creates a RestaurantController.
func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurants: restaurants}
}

type registerRestaurantRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// Register handles POST /api/restaurants.
func (c *RestaurantController) Register(w http.ResponseWriter, r *http.Request) {
	owner, err := requesterID(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	var req registerRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid input"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.Error(w, err)
		return
	}

	restaurant, err := c.restaurants.Register(r.Context(), services.RegisterRestaurantInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		OwnerID: owner,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.M{"success": true, "restaurant": restaurant})
}

// List handles GET /api/restaurants.
func (c *RestaurantController) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := c.restaurants.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// Nearby handles GET /api/restaurants/nearby.
func (c *RestaurantController) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, lng, distanceKm, err := parseNearbyQuery(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	restaurants, err := c.restaurants.Nearby(r.Context(), lat, lng, distanceKm)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// Get handles GET /api/restaurants/{id}.
func (c *RestaurantController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid restaurant ID"))
		return
	}

	restaurant, err := c.restaurants.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"success": true, "restaurant": restaurant})
}
