package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"foodshare/controllers"
	"foodshare/middleware"
	"foodshare/models"
	"foodshare/utils"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, authController *controllers.AuthController, restaurantController *controllers.RestaurantController, donationController *controllers.DonationController) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, utils.M{"success": true, "message": "ok"})
	}).Methods("GET")

	// Auth routes
	api.HandleFunc("/auth/register", authController.Register).Methods("POST")
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(middleware.AuthMiddleware)
	authProtected.HandleFunc("/me", authController.Me).Methods("GET")

	// Public restaurant routes
	api.HandleFunc("/restaurants", restaurantController.List).Methods("GET")
	api.HandleFunc("/restaurants/nearby", restaurantController.Nearby).Methods("GET")
	api.HandleFunc("/restaurants/{id}", restaurantController.Get).Methods("GET")

	// Restaurant registration, restaurant role only
	restaurantWrite := api.PathPrefix("/restaurants").Subrouter()
	restaurantWrite.Use(middleware.AuthMiddleware)
	restaurantWrite.Use(middleware.RequireRole(models.UserTypeRestaurant))
	restaurantWrite.HandleFunc("", restaurantController.Register).Methods("POST")

	// Public donation routes
	api.HandleFunc("/donations", donationController.List).Methods("GET")
	api.HandleFunc("/donations/nearby", donationController.Nearby).Methods("GET")
	api.HandleFunc("/donations/restaurant/{id}", donationController.ListByRestaurant).Methods("GET")

	// Donation writes, restaurant role only; ownership is checked in the service
	donationWrite := api.PathPrefix("/donations").Subrouter()
	donationWrite.Use(middleware.AuthMiddleware)
	donationWrite.Use(middleware.RequireRole(models.UserTypeRestaurant))
	donationWrite.HandleFunc("", donationController.Create).Methods("POST")
	donationWrite.HandleFunc("/{id}", donationController.Update).Methods("PUT")
	donationWrite.HandleFunc("/{id}", donationController.Delete).Methods("DELETE")
}
