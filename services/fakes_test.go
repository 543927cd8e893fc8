package services

import (
	"context"
	"math"
	"sort"

	geo "github.com/codingsince1985/geo-golang"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/models"
)

// In-memory stores mirroring the Mongo implementations' contracts:
// lookups return (nil, nil) on miss, FindNear sorts nearest first.

type memUserStore struct {
	users []models.User
}

func (s *memUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	stored := *user
	stored.ID = primitive.NewObjectID()
	s.users = append(s.users, stored)
	return stored.ID, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	user, _ := s.FindByEmail(ctx, email)
	return user != nil, nil
}

type memRestaurantStore struct {
	restaurants []models.Restaurant
}

func (s *memRestaurantStore) Insert(_ context.Context, restaurant *models.Restaurant) (primitive.ObjectID, error) {
	stored := *restaurant
	stored.ID = primitive.NewObjectID()
	s.restaurants = append(s.restaurants, stored)
	return stored.ID, nil
}

func (s *memRestaurantStore) FindAll(_ context.Context) ([]models.Restaurant, error) {
	return append([]models.Restaurant{}, s.restaurants...), nil
}

func (s *memRestaurantStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			restaurant := s.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, nil
}

func (s *memRestaurantStore) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Restaurant, error) {
	for i := range s.restaurants {
		if s.restaurants[i].User == userID {
			restaurant := s.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, nil
}

func (s *memRestaurantStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Restaurant, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	matches := []models.Restaurant{}
	for _, r := range s.restaurants {
		if wanted[r.ID] {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (s *memRestaurantStore) FindNear(_ context.Context, lat, lng, maxMeters float64) ([]models.Restaurant, error) {
	type scored struct {
		restaurant models.Restaurant
		meters     float64
	}
	var within []scored
	for _, r := range s.restaurants {
		d := haversineMeters(lat, lng, r.Location.Lat(), r.Location.Lng())
		if d <= maxMeters {
			within = append(within, scored{r, d})
		}
	}
	sort.Slice(within, func(i, j int) bool { return within[i].meters < within[j].meters })
	result := []models.Restaurant{}
	for _, match := range within {
		result = append(result, match.restaurant)
	}
	return result, nil
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

type memDonationStore struct {
	donations []models.Donation
}

func (s *memDonationStore) Insert(_ context.Context, donation *models.Donation) (primitive.ObjectID, error) {
	stored := *donation
	stored.ID = primitive.NewObjectID()
	s.donations = append(s.donations, stored)
	return stored.ID, nil
}

func (s *memDonationStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Donation, error) {
	for i := range s.donations {
		if s.donations[i].ID == id {
			donation := s.donations[i]
			return &donation, nil
		}
	}
	return nil, nil
}

func (s *memDonationStore) Find(_ context.Context, filter DonationFilter) ([]models.Donation, error) {
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range filter.Restaurants {
		wanted[id] = true
	}

	matches := []models.Donation{}
	for _, d := range s.donations {
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if filter.IsAvailable != nil && d.IsAvailable != *filter.IsAvailable {
			continue
		}
		if filter.Restaurants != nil && !wanted[d.RestaurantID] {
			continue
		}
		if filter.PickupAfter != nil && d.PickupTime.Before(*filter.PickupAfter) {
			continue
		}
		matches = append(matches, d)
	}

	if filter.Sort == SortPickupSoonest {
		sort.Slice(matches, func(i, j int) bool { return matches[i].PickupTime.Before(matches[j].PickupTime) })
	} else {
		sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	}
	return matches, nil
}

func (s *memDonationStore) Update(_ context.Context, id primitive.ObjectID, donation *models.Donation) error {
	for i := range s.donations {
		if s.donations[i].ID == id {
			updated := *donation
			updated.ID = id
			s.donations[i] = updated
			return nil
		}
	}
	return nil
}

func (s *memDonationStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range s.donations {
		if s.donations[i].ID == id {
			s.donations = append(s.donations[:i], s.donations[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeGeocoder returns a fixed geocoding result.
type fakeGeocoder struct {
	location *geo.Location
	err      error
}

func (g *fakeGeocoder) Geocode(string) (*geo.Location, error) {
	return g.location, g.err
}
