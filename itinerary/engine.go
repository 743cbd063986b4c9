// engine.go holds the pure day-bucket operations. Handlers load a snapshot,
// run one of these, and persist the result; nothing here touches the database.
package itinerary

import (
	"fmt"
	"sort"
	"time"

	"dreamtrip/models"
	"dreamtrip/utils"

	"github.com/samber/lo"
)

// Default drop point when an item has no coordinates yet (central Mauritius).
const (
	DefaultLatitude  = -20.348404
	DefaultLongitude = 57.552152
	defaultTime      = "10:00"
)

// AddItem appends a new item for the given day. Empty fields get defaults,
// the id is always freshly generated. It never fails.
func AddItem(items []models.ItineraryItem, day int, fields models.ItineraryItem) []models.ItineraryItem {
	if day < 1 {
		day = 1
	}

	item := models.ItineraryItem{
		ItemID:      utils.GetUUID(),
		Day:         day,
		Title:       fields.Title,
		Description: fields.Description,
		Time:        fields.Time,
		Location:    fields.Location,
		Latitude:    fields.Latitude,
		Longitude:   fields.Longitude,
		Category:    fields.Category,
	}
	if item.Title == "" {
		item.Title = "New Activity"
	}
	if item.Time == "" {
		item.Time = defaultTime
	}
	if item.Location == "" {
		item.Location = "Custom location"
	}
	if item.Category == "" {
		item.Category = models.CategoryActivity
	}
	if item.Latitude == 0 && item.Longitude == 0 {
		item.Latitude = DefaultLatitude
		item.Longitude = DefaultLongitude
	}

	return append(items, item)
}

// ToggleLock flips the lock flag of the item with the given id. Ordering is
// untouched. Returns false when no item matches.
func ToggleLock(items []models.ItineraryItem, id string) ([]models.ItineraryItem, bool) {
	found := false
	for i := range items {
		if items[i].ItemID == id {
			items[i].Locked = !items[i].Locked
			found = true
			break
		}
	}
	return items, found
}

// Reorder moves the item at src to dst within the display order of one day
// and writes the day's new order back into the full collection. Items of
// other days keep their slice positions. A negative dst means the drag was
// cancelled; out-of-range indices and locked drag sources are rejected the
// same way, by returning the collection unchanged.
func Reorder(items []models.ItineraryItem, day, src, dst int) []models.ItineraryItem {
	if dst < 0 || src < 0 {
		return items
	}

	// slice positions of this day's items, in display order
	var slots []int
	for i, item := range items {
		if item.Day == day {
			slots = append(slots, i)
		}
	}
	if src >= len(slots) || dst >= len(slots) {
		return items
	}
	if items[slots[src]].Locked {
		return items
	}
	if src == dst {
		return items
	}

	sub := lo.Map(slots, func(pos int, _ int) models.ItineraryItem {
		return items[pos]
	})
	moved := sub[src]
	sub = append(sub[:src], sub[src+1:]...)
	sub = append(sub[:dst], append([]models.ItineraryItem{moved}, sub[dst:]...)...)

	out := make([]models.ItineraryItem, len(items))
	copy(out, items)
	for i, pos := range slots {
		out[pos] = sub[i]
	}
	return out
}

// SyncDaysFromTripDates reconciles the item set with the trip date range:
// days beyond the range are trimmed and every day without at least one item
// gets a free-time placeholder. Unparseable dates or an end before the start
// leave the collection as is.
func SyncDaysFromTripDates(items []models.ItineraryItem, trip models.TripData) []models.ItineraryItem {
	start, err := time.Parse("2006-01-02", trip.StartDate)
	if err != nil {
		return items
	}
	end, err := time.Parse("2006-01-02", trip.EndDate)
	if err != nil {
		return items
	}
	if end.Before(start) {
		return items
	}

	daysCount := int(end.Sub(start).Hours()/24) + 1

	trimmed := lo.Filter(items, func(item models.ItineraryItem, _ int) bool {
		return item.Day <= daysCount
	})

	haveDays := lo.SliceToMap(trimmed, func(item models.ItineraryItem) (int, bool) {
		return item.Day, true
	})
	for d := 1; d <= daysCount; d++ {
		if haveDays[d] {
			continue
		}
		trimmed = append(trimmed, models.ItineraryItem{
			ItemID:      utils.GetUUID(),
			Day:         d,
			Title:       fmt.Sprintf("Free time - Day %d", d),
			Description: "Add activities you love or let AI suggest them",
			Time:        defaultTime,
			Location:    "Mauritius",
			Latitude:    DefaultLatitude,
			Longitude:   DefaultLongitude,
			Category:    models.CategoryActivity,
		})
	}
	return trimmed
}

// GeneratePlan replaces the whole collection with a deterministic two-item
// template per day, locked items included. days is clamped to [1,30].
func GeneratePlan(days int) []models.ItineraryItem {
	days = lo.Clamp(days, 1, 30)

	generated := make([]models.ItineraryItem, 0, days*2)
	for d := 1; d <= days; d++ {
		generated = append(generated, models.ItineraryItem{
			ItemID:      utils.GetUUID(),
			Day:         d,
			Title:       fmt.Sprintf("Morning exploration Day %d", d),
			Description: "Auto-generated activity",
			Time:        "09:00",
			Location:    "Mauritius",
			Latitude:    DefaultLatitude,
			Longitude:   DefaultLongitude,
			Category:    models.CategoryActivity,
		}, models.ItineraryItem{
			ItemID:      utils.GetUUID(),
			Day:         d,
			Title:       fmt.Sprintf("Local lunch Day %d", d),
			Description: "Taste Mauritian cuisine",
			Time:        "13:00",
			Location:    "Local Restaurant",
			Latitude:    DefaultLatitude,
			Longitude:   DefaultLongitude,
			Category:    models.CategoryMeal,
		})
	}
	return generated
}

// Days returns the sorted set of day numbers present in the collection.
func Days(items []models.ItineraryItem) []int {
	days := lo.Uniq(lo.Map(items, func(item models.ItineraryItem, _ int) int {
		return item.Day
	}))
	sort.Ints(days)
	return days
}

// DayItems returns the given day's items in display order.
func DayItems(items []models.ItineraryItem, day int) []models.ItineraryItem {
	return lo.Filter(items, func(item models.ItineraryItem, _ int) bool {
		return item.Day == day
	})
}
