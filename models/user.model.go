package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserType enumerates the roles a user can register as.
type UserType string

const (
	UserTypeRestaurant UserType = "restaurant"
	UserTypeNGO        UserType = "ngo"
	UserTypeIndividual UserType = "individual"
)

// Valid reports whether the user type is one of the allowed roles.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeRestaurant, UserTypeNGO, UserTypeIndividual:
		return true
	}
	return false
}

// User represents a registered account. The password field holds the bcrypt
// hash and is never serialized into responses.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	UserType  UserType           `bson:"userType" json:"userType"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
