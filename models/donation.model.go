package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category enumerates the food categories a donation can be posted under.
type Category string

const (
	CategoryVegetarian    Category = "vegetarian"
	CategoryNonVegetarian Category = "non-vegetarian"
	CategoryVegan         Category = "vegan"
	CategoryBakery        Category = "bakery"
)

// Valid reports whether the category is one of the allowed values.
func (c Category) Valid() bool {
	switch c {
	case CategoryVegetarian, CategoryNonVegetarian, CategoryVegan, CategoryBakery:
		return true
	}
	return false
}

// Donation represents a restaurant-posted offer of surplus food.
type Donation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Category     Category           `bson:"category" json:"category"`
	Description  string             `bson:"description" json:"description"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	PickupTime   time.Time          `bson:"pickupTime" json:"pickupTime"`
	IsAvailable  bool               `bson:"isAvailable" json:"isAvailable"`
	RestaurantID primitive.ObjectID `bson:"restaurant" json:"restaurant"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// DonationDetail is a donation with its restaurant's public fields attached.
// The embedded donation's raw restaurant id is shadowed by the summary.
type DonationDetail struct {
	Donation
	Restaurant RestaurantSummary `json:"restaurant"`
}
