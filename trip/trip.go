// Package trip stores the per-user trip parameters (dates, budget, travel
// style, group size, preferences). Saving trip data re-syncs the itinerary
// day buckets so the two never drift apart.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"dreamtrip/chatstream"
	"dreamtrip/db"
	"dreamtrip/itinerary"
	"dreamtrip/models"
	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Load returns the stored trip data for a user, or ok=false when the user
// never saved any.
func Load(ctx context.Context, userID string) (models.TripData, bool, error) {
	var trip models.TripData
	err := db.TripCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return models.TripData{}, false, nil
	}
	if err != nil {
		return models.TripData{}, false, err
	}
	return trip, true, nil
}

func GetTripData(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	trip, found, err := Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip data")
		return
	}
	if !found {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"tripData": nil})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"tripData": trip})
}

func SaveTripData(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	var trip models.TripData
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate(trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	trip.UserID = userID

	opts := options.Replace().SetUpsert(true)
	_, err := db.TripCollection.ReplaceOne(ctx, bson.M{"userid": userID}, trip, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save trip data")
		return
	}

	// keep the itinerary's day buckets aligned with the new date range
	if _, err := itinerary.SyncWithTripDates(ctx, userID); err != nil {
		log.Printf("trip: itinerary sync failed for %s: %v", userID, err)
	}
	chatstream.Publish(userID, chatstream.Event{Type: "trip", Payload: trip})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"tripData": trip, "ok": true})
}

func validate(trip models.TripData) error {
	if trip.StartDate != "" {
		if _, err := time.Parse("2006-01-02", trip.StartDate); err != nil {
			return errors.New("startDate must be YYYY-MM-DD")
		}
	}
	if trip.EndDate != "" {
		if _, err := time.Parse("2006-01-02", trip.EndDate); err != nil {
			return errors.New("endDate must be YYYY-MM-DD")
		}
	}
	if trip.StartDate != "" && trip.EndDate != "" {
		start, _ := time.Parse("2006-01-02", trip.StartDate)
		end, _ := time.Parse("2006-01-02", trip.EndDate)
		if end.Before(start) {
			return errors.New("endDate must not be before startDate")
		}
	}
	if trip.Budget < 0 {
		return errors.New("budget must not be negative")
	}
	if trip.GroupSize < 0 {
		return errors.New("groupSize must not be negative")
	}
	return nil
}
