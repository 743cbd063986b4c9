package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	TripCollection        *mongo.Collection
	ItineraryCollection   *mongo.Collection
	ActivitiesCollection  *mongo.Collection
	PreferencesCollection *mongo.Collection
	ExpensesCollection    *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("dreamtrip")
	UserCollection = database.Collection("users")
	TripCollection = database.Collection("trips")
	ItineraryCollection = database.Collection("itineraries")
	ActivitiesCollection = database.Collection("activities")
	PreferencesCollection = database.Collection("preferences")
	ExpensesCollection = database.Collection("expenses")
}
