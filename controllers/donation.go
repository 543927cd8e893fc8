package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/apperrors"
	"foodshare/models"
	"foodshare/services"
	"foodshare/utils"
)

// DonationController handles donation requests.
type DonationController struct {
	donations *services.DonationService
}

// NewDonationController creates a DonationController.
func NewDonationController(donations *services.DonationService) *DonationController {
	return &DonationController{donations: donations}
}

type createDonationRequest struct {
	Category    models.Category `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	PickupTime  time.Time       `json:"pickupTime" validate:"required"`
}

type updateDonationRequest struct {
	Category    *models.Category `json:"category"`
	Description *string          `json:"description"`
	Quantity    *int             `json:"quantity"`
	PickupTime  *time.Time       `json:"pickupTime"`
	IsAvailable *bool            `json:"isAvailable"`
}

// Create handles POST /api/donations.
func (c *DonationController) Create(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterID(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid input"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.Error(w, err)
		return
	}

	donation, err := c.donations.Create(r.Context(), requester, services.CreateDonationInput{
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		PickupTime:  req.PickupTime,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.M{"success": true, "donation": donation})
}

// List handles GET /api/donations with optional category/isAvailable filters.
func (c *DonationController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.ListFilter{Category: models.Category(query.Get("category"))}

	if availStr := query.Get("isAvailable"); availStr != "" {
		available, err := strconv.ParseBool(availStr)
		if err != nil {
			utils.Error(w, apperrors.NewValidation("Invalid value for isAvailable"))
			return
		}
		filter.IsAvailable = &available
	}

	donations, err := c.donations.List(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"success":   true,
		"count":     len(donations),
		"donations": donations,
	})
}

// Nearby handles GET /api/donations/nearby.
func (c *DonationController) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, lng, distanceKm, err := parseNearbyQuery(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	donations, err := c.donations.Nearby(r.Context(), lat, lng, distanceKm)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"success":   true,
		"count":     len(donations),
		"donations": donations,
	})
}

// ListByRestaurant handles GET /api/donations/restaurant/{id}.
func (c *DonationController) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid restaurant ID"))
		return
	}

	donations, err := c.donations.ListByRestaurant(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"success":   true,
		"count":     len(donations),
		"donations": donations,
	})
}

// Update handles PUT /api/donations/{id}.
func (c *DonationController) Update(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterID(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid donation ID"))
		return
	}

	var req updateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid input"))
		return
	}

	donation, err := c.donations.Update(r.Context(), id, requester, services.DonationPatch{
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		PickupTime:  req.PickupTime,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"success": true, "donation": donation})
}

// Delete handles DELETE /api/donations/{id}.
func (c *DonationController) Delete(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterID(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.NewValidation("Invalid donation ID"))
		return
	}

	if err := c.donations.Delete(r.Context(), id, requester); err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"success": true, "message": "Donation removed"})
}
