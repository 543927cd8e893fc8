package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"foodshare/models"
)

// RestaurantStore persists restaurants in the restaurants collection. The
// nearby query relies on the 2dsphere index on the location field.
type RestaurantStore struct {
	collection *mongo.Collection
}

func (s *RestaurantStore) Insert(ctx context.Context, restaurant *models.Restaurant) (primitive.ObjectID, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, restaurant)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *RestaurantStore) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	return s.find(ctx, bson.M{})
}

func (s *RestaurantStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *RestaurantStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Restaurant, error) {
	return s.findOne(ctx, bson.M{"user": userID})
}

func (s *RestaurantStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Restaurant, error) {
	if len(ids) == 0 {
		return []models.Restaurant{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindNear returns restaurants within maxMeters of the point. $near sorts
// by distance, nearest first.
func (s *RestaurantStore) FindNear(ctx context.Context, lat, lng, maxMeters float64) ([]models.Restaurant, error) {
	return s.find(ctx, bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": maxMeters,
			},
		},
	})
}

func (s *RestaurantStore) findOne(ctx context.Context, filter bson.M) (*models.Restaurant, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	var restaurant models.Restaurant
	err := s.collection.FindOne(ctx, filter).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *RestaurantStore) find(ctx context.Context, filter bson.M) ([]models.Restaurant, error) {
	ctx, cancel := listContext(ctx)
	defer cancel()

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
