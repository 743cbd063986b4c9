// Package export renders the itinerary as a downloadable PDF or an iCalendar
// feed that drops straight into Google/Apple Calendar.
package export

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"dreamtrip/budget"
	"dreamtrip/itinerary"
	"dreamtrip/models"
	"dreamtrip/trip"
	"dreamtrip/utils"

	ics "github.com/arran4/golang-ical"
	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/ringsaturn/tzf"
)

var (
	finderOnce sync.Once
	finder     tzf.F
)

// timezoneFor resolves the IANA zone at the item's coordinates, falling back
// to the island's zone when the finder can't be built.
func timezoneFor(lat, lng float64) *time.Location {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			log.Printf("export: timezone finder init failed: %v", err)
			return
		}
		finder = f
	})

	name := "Indian/Mauritius"
	if finder != nil {
		if found := finder.GetTimezoneName(lng, lat); found != "" {
			name = found
		}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// itemStart computes the wall-clock start of an item: trip start date plus
// the day offset, at the item's HH:MM, in the item's local timezone.
func itemStart(tripStart time.Time, item models.ItineraryItem) time.Time {
	loc := timezoneFor(item.Latitude, item.Longitude)
	day := tripStart.AddDate(0, 0, item.Day-1)

	clock, err := time.Parse("15:04", item.Time)
	if err != nil {
		clock = time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
}

func loadExportData(ctx context.Context, userID string) (models.ItinerarySnapshot, models.TripData, bool, error) {
	snap, err := itinerary.LoadSnapshot(ctx, userID)
	if err != nil {
		return snap, models.TripData{}, false, err
	}
	tripData, found, err := trip.Load(ctx, userID)
	if err != nil {
		return snap, models.TripData{}, false, err
	}
	return snap, tripData, found, nil
}

// GET /api/export/ical
func ExportICal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	snap, tripData, found, err := loadExportData(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load itinerary")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusBadRequest, "Set your trip dates before exporting")
		return
	}
	tripStart, err := time.Parse("2006-01-02", tripData.StartDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Set your trip dates before exporting")
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//DreamTrip//Mauritius Planner//EN")

	for _, item := range snap.Items {
		start := itemStart(tripStart, item)
		event := cal.AddEvent(fmt.Sprintf("%s@dreamtrip", item.ItemID))
		event.SetCreatedTime(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Hour))
		event.SetSummary(item.Title)
		event.SetLocation(item.Location)
		if item.Description != "" {
			event.SetDescription(item.Description)
		}
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="mauritius-trip.ics"`)
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		log.Printf("export: ical write failed: %v", err)
	}
}

// GET /api/export/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	snap, tripData, found, err := loadExportData(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load itinerary")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "Mauritius Trip Itinerary")
	pdf.Ln(14)

	if found {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Dates: %s to %s", tripData.StartDate, tripData.EndDate))
		pdf.Ln(7)
		if tripData.Budget > 0 {
			pdf.Cell(0, 7, fmt.Sprintf("Budget: $%.0f    Style: %s    Group: %d",
				tripData.Budget, tripData.TravelStyle, tripData.GroupSize))
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	for _, day := range itinerary.Days(snap.Items) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d", day))
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		for _, item := range itinerary.DayItems(snap.Items, day) {
			pdf.Cell(0, 6, fmt.Sprintf("%s  %s (%s)", item.Time, item.Title, item.Location))
			pdf.Ln(6)
			if item.Description != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.Cell(0, 5, "    "+item.Description)
				pdf.Ln(6)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		pdf.Ln(4)
	}

	if _, summary, err := budget.Overview(ctx, userID); err == nil && summary.TotalSpent > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 9, "Budget Summary")
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Spent: $%.2f of $%.2f (remaining $%.2f)",
			summary.TotalSpent, summary.TotalBudget, summary.Remaining))
		pdf.Ln(6)
		for category, total := range summary.CategoryTotals {
			pdf.Cell(0, 6, fmt.Sprintf("    %s: $%.2f", category, total))
			pdf.Ln(6)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="mauritius-trip.pdf"`)
	if err := pdf.Output(w); err != nil {
		log.Printf("export: pdf write failed: %v", err)
	}
}
