package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/apperrors"
	"foodshare/models"
)

// DonationService handles the donation lifecycle and its listings.
type DonationService struct {
	donations   DonationStore
	restaurants RestaurantStore
}

// NewDonationService creates a DonationService.
func NewDonationService(donations DonationStore, restaurants RestaurantStore) *DonationService {
	return &DonationService{donations: donations, restaurants: restaurants}
}

// CreateDonationInput carries the fields for a new donation.
type CreateDonationInput struct {
	Category    models.Category
	Description string
	Quantity    int
	PickupTime  time.Time
}

// DonationPatch carries a partial update; nil fields are left unchanged.
type DonationPatch struct {
	Category    *models.Category
	Description *string
	Quantity    *int
	PickupTime  *time.Time
	IsAvailable *bool
}

// ListFilter narrows the public donation listing.
type ListFilter struct {
	Category    models.Category
	IsAvailable *bool
}

func validateCategory(c models.Category) error {
	if !c.Valid() {
		return apperrors.NewValidation("category must be one of: vegetarian, non-vegetarian, vegan, bakery")
	}
	return nil
}

func validateQuantity(q int) error {
	if q <= 0 {
		return apperrors.NewValidation("quantity must be a positive number of servings")
	}
	return nil
}

func validatePickupTime(t time.Time) error {
	if !t.After(time.Now()) {
		return apperrors.NewValidation("pickupTime must be in the future")
	}
	return nil
}

// Create resolves the requester's restaurant and persists a new available
// donation.
func (s *DonationService) Create(ctx context.Context, requesterID primitive.ObjectID, in CreateDonationInput) (*models.Donation, error) {
	restaurant, err := s.restaurants.FindByUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperrors.NewNotFound("Restaurant not found. Please register a restaurant first.")
	}

	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if err := validatePickupTime(in.PickupTime); err != nil {
		return nil, err
	}

	donation := &models.Donation{
		Category:     in.Category,
		Description:  in.Description,
		Quantity:     in.Quantity,
		PickupTime:   in.PickupTime,
		IsAvailable:  true,
		RestaurantID: restaurant.ID,
		CreatedAt:    time.Now(),
	}
	id, err := s.donations.Insert(ctx, donation)
	if err != nil {
		return nil, err
	}
	donation.ID = id
	return donation, nil
}

// List returns donations matching the filter, newest first, each with its
// restaurant's public fields attached.
func (s *DonationService) List(ctx context.Context, filter ListFilter) ([]models.DonationDetail, error) {
	donations, err := s.donations.Find(ctx, DonationFilter{
		Category:    filter.Category,
		IsAvailable: filter.IsAvailable,
		Sort:        SortNewestFirst,
	})
	if err != nil {
		return nil, err
	}
	return s.attachRestaurants(ctx, donations, nil)
}

// ListByRestaurant returns the restaurant's available donations, soonest
// pickup first.
func (s *DonationService) ListByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Donation, error) {
	available := true
	return s.donations.Find(ctx, DonationFilter{
		Restaurants: []primitive.ObjectID{restaurantID},
		IsAvailable: &available,
		Sort:        SortPickupSoonest,
	})
}

// Nearby runs the two-stage query: restaurants within the radius first,
// then their available donations with a pickup time still in the future.
func (s *DonationService) Nearby(ctx context.Context, lat, lng, distanceKm float64) ([]models.DonationDetail, error) {
	restaurants, err := s.restaurants.FindNear(ctx, lat, lng, distanceKm*1000)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return []models.DonationDetail{}, nil
	}

	ids := make([]primitive.ObjectID, len(restaurants))
	for i, r := range restaurants {
		ids[i] = r.ID
	}

	available := true
	now := time.Now()
	donations, err := s.donations.Find(ctx, DonationFilter{
		Restaurants: ids,
		IsAvailable: &available,
		PickupAfter: &now,
		Sort:        SortPickupSoonest,
	})
	if err != nil {
		return nil, err
	}
	return s.attachRestaurants(ctx, donations, restaurants)
}

// Update applies a partial update after checking the requester owns the
// donation's restaurant. Patched fields get the same validation as creation.
func (s *DonationService) Update(ctx context.Context, id, requesterID primitive.ObjectID, patch DonationPatch) (*models.Donation, error) {
	donation, err := s.authorize(ctx, id, requesterID, "update")
	if err != nil {
		return nil, err
	}

	if patch.Category != nil {
		if err := validateCategory(*patch.Category); err != nil {
			return nil, err
		}
		donation.Category = *patch.Category
	}
	if patch.Description != nil {
		donation.Description = *patch.Description
	}
	if patch.Quantity != nil {
		if err := validateQuantity(*patch.Quantity); err != nil {
			return nil, err
		}
		donation.Quantity = *patch.Quantity
	}
	if patch.PickupTime != nil {
		if err := validatePickupTime(*patch.PickupTime); err != nil {
			return nil, err
		}
		donation.PickupTime = *patch.PickupTime
	}
	if patch.IsAvailable != nil {
		donation.IsAvailable = *patch.IsAvailable
	}

	if err := s.donations.Update(ctx, donation.ID, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// Delete removes a donation after the same ownership check as Update.
func (s *DonationService) Delete(ctx context.Context, id, requesterID primitive.ObjectID) error {
	if _, err := s.authorize(ctx, id, requesterID, "delete"); err != nil {
		return err
	}
	return s.donations.Delete(ctx, id)
}

// authorize loads the donation and its restaurant and checks the requester
// is the restaurant's owner. Read-check-then-write: no isolation against a
// concurrent mutation, which this domain accepts.
func (s *DonationService) authorize(ctx context.Context, id, requesterID primitive.ObjectID, action string) (*models.Donation, error) {
	donation, err := s.donations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperrors.NewNotFound("Donation not found")
	}

	restaurant, err := s.restaurants.FindByID(ctx, donation.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperrors.NewNotFound("Restaurant not found")
	}

	if restaurant.User != requesterID {
		return nil, apperrors.NewForbidden("Not authorized to " + action + " this donation")
	}
	return donation, nil
}

// attachRestaurants joins restaurant summaries onto donations. When the
// caller already holds the restaurants they are reused; otherwise the
// referenced set is fetched in one query.
func (s *DonationService) attachRestaurants(ctx context.Context, donations []models.Donation, known []models.Restaurant) ([]models.DonationDetail, error) {
	if known == nil && len(donations) > 0 {
		seen := make(map[primitive.ObjectID]bool)
		var ids []primitive.ObjectID
		for _, d := range donations {
			if !seen[d.RestaurantID] {
				seen[d.RestaurantID] = true
				ids = append(ids, d.RestaurantID)
			}
		}
		var err error
		known, err = s.restaurants.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	summaries := make(map[primitive.ObjectID]models.RestaurantSummary, len(known))
	for i := range known {
		summaries[known[i].ID] = known[i].Summary()
	}

	details := make([]models.DonationDetail, len(donations))
	for i, d := range donations {
		details[i] = models.DonationDetail{Donation: d, Restaurant: summaries[d.RestaurantID]}
	}
	return details, nil
}
