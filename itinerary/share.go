package itinerary

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"dreamtrip/db"
	"dreamtrip/models"
	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func shareBaseURL() string {
	if base := os.Getenv("SHARE_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

// POST /api/itinerary/share
// Mints (or returns the existing) read-only share link for the itinerary.
func ShareItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	if snap.ShareID == "" {
		snap.ShareID = utils.GenerateRandomString(13)
		if err := saveSnapshot(ctx, snap); err != nil {
			http.Error(w, "Error saving share link", http.StatusInternalServerError)
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"shareId": snap.ShareID,
		"url":     fmt.Sprintf("%s/shared-itinerary/%s", shareBaseURL(), snap.ShareID),
	})
}

// GET /api/itinerary/shared/:shareid
// Public read-only view of a shared itinerary.
func GetSharedItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var snap models.ItinerarySnapshot
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"shareid": ps.ByName("shareid")}).Decode(&snap)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	// strip owner identity from the public view
	snap.UserID = ""
	utils.RespondWithJSON(w, http.StatusOK, snap)
}

// GET /api/itinerary/share/qr
// PNG QR code pointing at the share link.
func ShareQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := LoadSnapshot(ctx, userID)
	if err != nil || snap.ShareID == "" {
		http.Error(w, "No share link yet", http.StatusNotFound)
		return
	}

	url := fmt.Sprintf("%s/shared-itinerary/%s", shareBaseURL(), snap.ShareID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
