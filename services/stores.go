package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/models"
)

// Store interfaces consumed by the services. Lookups return (nil, nil) when
// no document matches; errors are reserved for store failures.

// UserStore persists user accounts.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// RestaurantStore persists restaurants and answers geospatial queries.
// FindNear returns restaurants within maxMeters of the point, nearest first.
type RestaurantStore interface {
	Insert(ctx context.Context, restaurant *models.Restaurant) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Restaurant, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Restaurant, error)
	FindNear(ctx context.Context, lat, lng, maxMeters float64) ([]models.Restaurant, error)
}

// DonationSort selects the ordering of donation listings.
type DonationSort int

const (
	SortNewestFirst DonationSort = iota
	SortPickupSoonest
)

// DonationFilter narrows a donation listing. Zero values mean "any".
type DonationFilter struct {
	Category    models.Category
	IsAvailable *bool
	Restaurants []primitive.ObjectID
	PickupAfter *time.Time
	Sort        DonationSort
}

// DonationStore persists donations.
type DonationStore interface {
	Insert(ctx context.Context, donation *models.Donation) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error)
	Find(ctx context.Context, filter DonationFilter) ([]models.Donation, error)
	Update(ctx context.Context, id primitive.ObjectID, donation *models.Donation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
