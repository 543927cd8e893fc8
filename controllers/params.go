package controllers

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodshare/apperrors"
	"foodshare/middleware"
)

// requesterID extracts the authenticated user's id from the request context.
func requesterID(r *http.Request) (primitive.ObjectID, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return primitive.NilObjectID, apperrors.NewAuth("Authorization required")
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewAuth("Invalid or expired token")
	}
	return id, nil
}

// parseNearbyQuery reads lat/lng/distance from the query string. Both
// coordinates are required; distance defaults to 10 km. Validation happens
// here so a bad request never reaches the store.
func parseNearbyQuery(r *http.Request) (lat, lng, distanceKm float64, err error) {
	query := r.URL.Query()
	latStr, lngStr := query.Get("lat"), query.Get("lng")
	if latStr == "" || lngStr == "" {
		return 0, 0, 0, apperrors.NewValidation("Please provide latitude and longitude")
	}

	lat, convErr := strconv.ParseFloat(latStr, 64)
	if convErr != nil {
		return 0, 0, 0, apperrors.NewValidation("Invalid latitude")
	}
	lng, convErr = strconv.ParseFloat(lngStr, 64)
	if convErr != nil {
		return 0, 0, 0, apperrors.NewValidation("Invalid longitude")
	}

	distanceKm = 10
	if distStr := query.Get("distance"); distStr != "" {
		distanceKm, convErr = strconv.ParseFloat(distStr, 64)
		if convErr != nil || distanceKm <= 0 {
			return 0, 0, 0, apperrors.NewValidation("Invalid distance")
		}
	}
	return lat, lng, distanceKm, nil
}
