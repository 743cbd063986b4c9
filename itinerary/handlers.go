package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dreamtrip/chatstream"
	"dreamtrip/db"
	"dreamtrip/models"
	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadSnapshot returns the user's itinerary document, seeding a starter
// itinerary for first-time users. The assistant reads planning state through
// this same function.
func LoadSnapshot(ctx context.Context, userID string) (models.ItinerarySnapshot, error) {
	var snap models.ItinerarySnapshot
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&snap)
	if err == mongo.ErrNoDocuments {
		return seedSnapshot(userID), nil
	}
	if err != nil {
		return snap, err
	}
	if snap.SelectedDay < 1 {
		snap.SelectedDay = 1
	}
	return snap, nil
}

func saveSnapshot(ctx context.Context, snap models.ItinerarySnapshot) error {
	snap.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	opts := options.Replace().SetUpsert(true)
	_, err := db.ItineraryCollection.ReplaceOne(ctx, bson.M{"userid": snap.UserID}, snap, opts)
	if err == nil {
		// other open tabs of the same user pick up the change live
		chatstream.Publish(snap.UserID, chatstream.Event{Type: "itinerary", Payload: snap})
	}
	return err
}

// seedSnapshot mirrors the starter plan new users see before they generate
// or build their own.
func seedSnapshot(userID string) models.ItinerarySnapshot {
	return models.ItinerarySnapshot{
		UserID:      userID,
		SelectedDay: 1,
		Items: []models.ItineraryItem{
			{ItemID: utils.GetUUID(), Day: 1, Title: "Arrival & Check-in", Description: "Airport pickup and hotel check-in at Le Morne", Time: "14:00", Location: "Le Morne Brabant", Latitude: -20.4569, Longitude: 57.3108, Category: models.CategoryAccommodation},
			{ItemID: utils.GetUUID(), Day: 1, Title: "Sunset Beach Walk", Description: "Romantic walk along Le Morne beach with stunning sunset views", Time: "18:00", Location: "Le Morne Beach", Latitude: -20.4569, Longitude: 57.3108, Category: models.CategoryActivity},
			{ItemID: utils.GetUUID(), Day: 2, Title: "Underwater Sea Walk", Description: "Explore marine life without diving skills at Blue Bay", Time: "09:00", Location: "Blue Bay Marine Park", Latitude: -20.4667, Longitude: 57.7167, Category: models.CategoryActivity},
			{ItemID: utils.GetUUID(), Day: 2, Title: "Creole Lunch", Description: "Authentic Mauritian cuisine at local restaurant", Time: "13:00", Location: "Mahebourg", Latitude: -20.4082, Longitude: 57.7, Category: models.CategoryMeal},
			{ItemID: utils.GetUUID(), Day: 3, Title: "Chamarel Seven Colored Earth", Description: "Visit the famous geological formation and Chamarel Waterfall", Time: "10:00", Location: "Chamarel", Latitude: -20.4225, Longitude: 57.3756, Category: models.CategoryActivity},
		},
	}
}

// GET /api/itinerary
func GetItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		http.Error(w, "Error fetching itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// PUT /api/itinerary
func ReplaceItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var snap models.ItinerarySnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	snap.UserID = userID
	if snap.SelectedDay < 1 {
		snap.SelectedDay = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := saveSnapshot(ctx, snap); err != nil {
		http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// POST /api/itinerary/items
func AddItineraryItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Day  int                  `json:"day"`
		Item models.ItineraryItem `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		http.Error(w, "Error fetching itinerary", http.StatusInternalServerError)
		return
	}

	day := req.Day
	if day == 0 {
		day = snap.SelectedDay
	}
	snap.Items = AddItem(snap.Items, day, req.Item)

	if err := saveSnapshot(ctx, snap); err != nil {
		http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(snap.Items[len(snap.Items)-1])
}

// PATCH /api/itinerary/items/:id/lock
func ToggleItemLock(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		http.Error(w, "Error fetching itinerary", http.StatusInternalServerError)
		return
	}

	items, found := ToggleLock(snap.Items, ps.ByName("id"))
	if !found {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	snap.Items = items

	if err := saveSnapshot(ctx, snap); err != nil {
		http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// POST /api/itinerary/reorder
// destIndex is null when the drag was dropped outside a valid target.
func ReorderItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Day         int  `json:"day"`
		SourceIndex int  `json:"sourceIndex"`
		DestIndex   *int `json:"destIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		http.Error(w, "Error fetching itinerary", http.StatusInternalServerError)
		return
	}

	if req.DestIndex != nil {
		snap.Items = Reorder(snap.Items, req.Day, req.SourceIndex, *req.DestIndex)
		if err := saveSnapshot(ctx, snap); err != nil {
			http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// POST /api/itinerary/sync-days
// Reconciles the day set with the stored trip dates. Also invoked
// internally whenever trip data is saved.
func SyncItineraryDays(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := SyncWithTripDates(ctx, userID)
	if err != nil {
		http.Error(w, "Error syncing itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// SyncWithTripDates applies SyncDaysFromTripDates against the stored trip
// data and persists the result. Without trip data it is a no-op.
func SyncWithTripDates(ctx context.Context, userID string) (models.ItinerarySnapshot, error) {
	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		return snap, err
	}

	var trip models.TripData
	err = db.TripCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return snap, nil
	}
	if err != nil {
		return snap, err
	}

	snap.Items = SyncDaysFromTripDates(snap.Items, trip)
	snap.SelectedDay = 1
	if err := saveSnapshot(ctx, snap); err != nil {
		return snap, err
	}
	return snap, nil
}

// POST /api/itinerary/generate
func GenerateItineraryPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Days int `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		http.Error(w, "Error fetching itinerary", http.StatusInternalServerError)
		return
	}

	// Replaces everything, locked items included.
	snap.Items = GeneratePlan(req.Days)
	snap.SelectedDay = 1

	if err := saveSnapshot(ctx, snap); err != nil {
		http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// POST /api/itinerary/select-day
func SelectDay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Day int `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Day < 1 {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil {
		http.Error(w, "Error fetching itinerary", http.StatusInternalServerError)
		return
	}

	snap.SelectedDay = req.Day
	if err := saveSnapshot(ctx, snap); err != nil {
		http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap)
}
