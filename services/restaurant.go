package services

import (
	"context"
	"fmt"
	"time"

	geo "github.com/codingsince1985/geo-golang"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/apperrors"
	"foodshare/models"
)

// Geocoder resolves a free-text address to coordinates. Satisfied by the
// geo-golang providers; a nil location means the address had no result.
type Geocoder interface {
	Geocode(address string) (*geo.Location, error)
}

// RestaurantService handles restaurant registration and lookups.
type RestaurantService struct {
	restaurants RestaurantStore
	geocoder    Geocoder
}

// NewRestaurantService creates a RestaurantService.
func NewRestaurantService(restaurants RestaurantStore, geocoder Geocoder) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, geocoder: geocoder}
}

// RegisterRestaurantInput carries the fields for a new restaurant.
type RegisterRestaurantInput struct {
	Name    string
	Email   string
	Address string
	Phone   string
	OwnerID primitive.ObjectID
}

// Register geocodes the address and persists the restaurant linked to its
// owner. An address with no geocoding result falls back to (0,0); a failed
// lookup is surfaced as an internal error.
func (s *RestaurantService) Register(ctx context.Context, in RegisterRestaurantInput) (*models.Restaurant, error) {
	location, err := s.geocoder.Geocode(in.Address)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}

	var lat, lng float64
	if location != nil {
		lat, lng = location.Lat, location.Lng
	}

	restaurant := &models.Restaurant{
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		Phone:     in.Phone,
		Location:  models.NewGeoPoint(lat, lng),
		User:      in.OwnerID,
		CreatedAt: time.Now(),
	}
	id, err := s.restaurants.Insert(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	restaurant.ID = id
	return restaurant, nil
}

// List returns all restaurants.
func (s *RestaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurants.FindAll(ctx)
}

// Get returns a restaurant by id.
func (s *RestaurantService) Get(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperrors.NewNotFound("Restaurant not found")
	}
	return restaurant, nil
}

// Nearby returns restaurants within distanceKm of the point, nearest first.
func (s *RestaurantService) Nearby(ctx context.Context, lat, lng, distanceKm float64) ([]models.Restaurant, error) {
	return s.restaurants.FindNear(ctx, lat, lng, distanceKm*1000)
}
