// Package activities serves the curated Mauritius activity catalog. The
// catalog lives in MongoDB and is seeded on first access so a fresh
// deployment is never empty.
package activities

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dreamtrip/db"
	"dreamtrip/models"
	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The assistant never asks for more than this many rows.
const maxCatalogRows = 50

// Fetch returns up to limit catalog rows, optionally filtered by category.
// An empty database gets seeded with the starter catalog first.
func Fetch(ctx context.Context, category string, limit int64) ([]models.Activity, error) {
	if limit <= 0 || limit > maxCatalogRows {
		limit = maxCatalogRows
	}

	count, err := db.ActivitiesCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := seedCatalog(ctx); err != nil {
			return nil, err
		}
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := db.ActivitiesCollection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Activity
	for cursor.Next(ctx) {
		var activity models.Activity
		if err := cursor.Decode(&activity); err == nil {
			result = append(result, activity)
		}
	}
	return result, cursor.Err()
}

func seedCatalog(ctx context.Context) error {
	docs := make([]interface{}, 0, len(starterCatalog))
	for _, activity := range starterCatalog {
		activity.ActivityID = utils.GetUUID()
		docs = append(docs, activity)
	}
	_, err := db.ActivitiesCollection.InsertMany(ctx, docs)
	return err
}

// GET /api/activities
func GetActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		limit = maxCatalogRows
	}

	result, err := Fetch(ctx, r.URL.Query().Get("category"), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}
	if result == nil {
		result = []models.Activity{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"activities": result})
}
