// Package store implements the service store interfaces on MongoDB.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store bundles the Mongo-backed stores over one database.
type Store struct {
	Users       *UserStore
	Restaurants *RestaurantStore
	Donations   *DonationStore
}

// New wires the stores against the named database.
func New(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		Users:       &UserStore{collection: db.Collection("users")},
		Restaurants: &RestaurantStore{collection: db.Collection("restaurants")},
		Donations:   &DonationStore{collection: db.Collection("donations")},
	}
}

// EnsureIndexes creates the unique email index and the 2dsphere index that
// backs the nearby queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.Restaurants.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	return err
}

func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func listContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 30*time.Second)
}
