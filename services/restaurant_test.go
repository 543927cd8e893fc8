package services

import (
	"context"
	"errors"
	"testing"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/apperrors"
	"foodshare/models"
)

func restaurantInput(owner primitive.ObjectID) RegisterRestaurantInput {
	return RegisterRestaurantInput{
		Name:    "Green Leaf",
		Email:   "contact@greenleaf.example",
		Address: "12 Market Street, Springfield",
		Phone:   "555-0101",
		OwnerID: owner,
	}
}

func TestRegisterRestaurantGeocodesAddress(t *testing.T) {
	store := &memRestaurantStore{}
	svc := NewRestaurantService(store, &fakeGeocoder{location: &geo.Location{Lat: 40.71, Lng: -74.0}})

	restaurant, err := svc.Register(context.Background(), restaurantInput(primitive.NewObjectID()))
	require.NoError(t, err)

	assert.Equal(t, 40.71, restaurant.Location.Lat())
	assert.Equal(t, -74.0, restaurant.Location.Lng())
	assert.Equal(t, "Point", restaurant.Location.Type)
	assert.False(t, restaurant.ID.IsZero())
}

func TestRegisterRestaurantFallsBackToZeroPoint(t *testing.T) {
	svc := NewRestaurantService(&memRestaurantStore{}, &fakeGeocoder{})

	restaurant, err := svc.Register(context.Background(), restaurantInput(primitive.NewObjectID()))
	require.NoError(t, err)

	assert.Equal(t, 0.0, restaurant.Location.Lat())
	assert.Equal(t, 0.0, restaurant.Location.Lng())
}

func TestRegisterRestaurantGeocoderFailure(t *testing.T) {
	svc := NewRestaurantService(&memRestaurantStore{}, &fakeGeocoder{err: errors.New("nominatim unreachable")})

	_, err := svc.Register(context.Background(), restaurantInput(primitive.NewObjectID()))
	require.Error(t, err)
	assert.Equal(t, 500, apperrors.StatusCode(err))
}

func TestGetRestaurantNotFound(t *testing.T) {
	svc := NewRestaurantService(&memRestaurantStore{}, &fakeGeocoder{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID())

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestNearbyRestaurantsOrderedAndBounded(t *testing.T) {
	store := &memRestaurantStore{}
	svc := NewRestaurantService(store, &fakeGeocoder{})
	ctx := context.Background()

	// Distances from (40.0, -74.0): ~1.1km, ~5.6km, ~55km.
	seed := []struct {
		name string
		lat  float64
	}{
		{"Far", 40.5},
		{"Near", 40.01},
		{"Mid", 40.05},
	}
	for _, s := range seed {
		_, err := store.Insert(ctx, &models.Restaurant{
			Name:     s.name,
			Location: models.NewGeoPoint(s.lat, -74.0),
			User:     primitive.NewObjectID(),
		})
		require.NoError(t, err)
	}

	nearby, err := svc.Nearby(ctx, 40.0, -74.0, 10)
	require.NoError(t, err)

	require.Len(t, nearby, 2)
	assert.Equal(t, "Near", nearby[0].Name)
	assert.Equal(t, "Mid", nearby[1].Name)
}
