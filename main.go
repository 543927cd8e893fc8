// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"foodshare/controllers"
	"foodshare/logger"
	"foodshare/middleware"
	"foodshare/routes"
	"foodshare/services"
	"foodshare/store"
	"foodshare/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Proceeding with environment variables.")
	}

	logger.Init()

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	stores := store.New(client, utils.DatabaseName())

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := stores.EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// Initialize services
	emailService := utils.NewEmailService()
	authService := services.NewAuthService(stores.Users, emailService)
	restaurantService := services.NewRestaurantService(stores.Restaurants, openstreetmap.Geocoder())
	donationService := services.NewDonationService(stores.Donations, stores.Restaurants)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	restaurantController := controllers.NewRestaurantController(restaurantService)
	donationController := controllers.NewDonationController(donationService)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	routes.RegisterRoutes(router, authController, restaurantController, donationController)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("Server is running")
	if err := http.ListenAndServe(":"+port, cors(router)); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
