package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point as stored by MongoDB. Coordinates are
// [longitude, latitude], matching the 2dsphere index convention.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from latitude/longitude.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

func (p GeoPoint) Lng() float64 {
	if len(p.Coordinates) > 0 {
		return p.Coordinates[0]
	}
	return 0
}

func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) > 1 {
		return p.Coordinates[1]
	}
	return 0
}

// Restaurant represents a donor restaurant. Location is geocoded from the
// address once, at registration time.
type Restaurant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Address   string             `bson:"address" json:"address"`
	Phone     string             `bson:"phone" json:"phone"`
	Location  GeoPoint           `bson:"location" json:"location"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RestaurantSummary is the subset of restaurant fields attached to donation
// listings (read-only join).
type RestaurantSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Address  string             `bson:"address" json:"address"`
	Location GeoPoint           `bson:"location" json:"location"`
}

// Summary projects a restaurant down to the fields exposed on joins.
func (r *Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address, Location: r.Location}
}
