package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodshare/models"
	"foodshare/services"
)

// DonationStore persists donations in the donations collection.
type DonationStore struct {
	collection *mongo.Collection
}

func (s *DonationStore) Insert(ctx context.Context, donation *models.Donation) (primitive.ObjectID, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, donation)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *DonationStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	var donation models.Donation
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&donation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (s *DonationStore) Find(ctx context.Context, filter services.DonationFilter) ([]models.Donation, error) {
	ctx, cancel := listContext(ctx)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.IsAvailable != nil {
		query["isAvailable"] = *filter.IsAvailable
	}
	if filter.Restaurants != nil {
		query["restaurant"] = bson.M{"$in": filter.Restaurants}
	}
	if filter.PickupAfter != nil {
		query["pickupTime"] = bson.M{"$gte": *filter.PickupAfter}
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	if filter.Sort == services.SortPickupSoonest {
		sort = bson.D{{Key: "pickupTime", Value: 1}}
	}

	cursor, err := s.collection.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donations := []models.Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (s *DonationStore) Update(ctx context.Context, id primitive.ObjectID, donation *models.Donation) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"category":    donation.Category,
		"description": donation.Description,
		"quantity":    donation.Quantity,
		"pickupTime":  donation.PickupTime,
		"isAvailable": donation.IsAvailable,
	}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (s *DonationStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
