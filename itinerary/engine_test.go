package itinerary

import (
	"fmt"
	"sort"
	"testing"

	"dreamtrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []models.ItineraryItem {
	return []models.ItineraryItem{
		{ItemID: "a", Day: 1, Title: "Check-in", Time: "14:00"},
		{ItemID: "b", Day: 1, Title: "Beach Walk", Time: "18:00"},
		{ItemID: "c", Day: 2, Title: "Sea Walk", Time: "09:00"},
		{ItemID: "d", Day: 2, Title: "Creole Lunch", Time: "13:00"},
		{ItemID: "e", Day: 2, Title: "Market Visit", Time: "16:00"},
		{ItemID: "f", Day: 3, Title: "Chamarel", Time: "10:00"},
	}
}

func idsForDay(items []models.ItineraryItem, day int) []string {
	var ids []string
	for _, item := range items {
		if item.Day == day {
			ids = append(ids, item.ItemID)
		}
	}
	return ids
}

func TestAddItemDefaults(t *testing.T) {
	items := AddItem(nil, 2, models.ItineraryItem{})

	require.Len(t, items, 1)
	item := items[0]
	assert.NotEmpty(t, item.ItemID)
	assert.Equal(t, 2, item.Day)
	assert.Equal(t, "New Activity", item.Title)
	assert.Equal(t, "10:00", item.Time)
	assert.Equal(t, "Custom location", item.Location)
	assert.Equal(t, models.CategoryActivity, item.Category)
	assert.Equal(t, DefaultLatitude, item.Latitude)
	assert.Equal(t, DefaultLongitude, item.Longitude)
}

func TestAddItemGeneratesFreshIDs(t *testing.T) {
	items := AddItem(nil, 1, models.ItineraryItem{Title: "Snorkeling"})
	items = AddItem(items, 1, models.ItineraryItem{Title: "Snorkeling"})

	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ItemID, items[1].ItemID)
}

func TestToggleLock(t *testing.T) {
	items := testItems()

	items, found := ToggleLock(items, "c")
	require.True(t, found)
	assert.True(t, items[2].Locked)

	// ordering untouched
	assert.Equal(t, []string{"c", "d", "e"}, idsForDay(items, 2))

	items, found = ToggleLock(items, "c")
	require.True(t, found)
	assert.False(t, items[2].Locked)

	_, found = ToggleLock(items, "nope")
	assert.False(t, found)
}

func TestReorderIsPermutation(t *testing.T) {
	items := testItems()

	out := Reorder(items, 2, 0, 2)

	// day 2 reordered: c moved to the end
	assert.Equal(t, []string{"d", "e", "c"}, idsForDay(out, 2))

	// other days keep their exact order
	assert.Equal(t, []string{"a", "b"}, idsForDay(out, 1))
	assert.Equal(t, []string{"f"}, idsForDay(out, 3))

	// multiset of ids per day is unchanged
	before := idsForDay(items, 2)
	after := idsForDay(out, 2)
	sort.Strings(before)
	sort.Strings(after)
	assert.Equal(t, before, after)
}

func TestReorderOccupiesSameSlots(t *testing.T) {
	// day-2 items sit at slice positions 2,3,4; a reorder must not move
	// them into other positions
	out := Reorder(testItems(), 2, 2, 0)

	assert.Equal(t, "a", out[0].ItemID)
	assert.Equal(t, "b", out[1].ItemID)
	assert.Equal(t, "e", out[2].ItemID)
	assert.Equal(t, "c", out[3].ItemID)
	assert.Equal(t, "d", out[4].ItemID)
	assert.Equal(t, "f", out[5].ItemID)
}

func TestReorderCancelledDragIsNoop(t *testing.T) {
	items := testItems()

	out := Reorder(items, 2, 1, -1)
	assert.Equal(t, items, out)
}

func TestReorderOutOfRangeIsNoop(t *testing.T) {
	items := testItems()

	assert.Equal(t, items, Reorder(items, 2, 5, 0))
	assert.Equal(t, items, Reorder(items, 2, 0, 9))
	assert.Equal(t, items, Reorder(items, 7, 0, 0))
}

func TestReorderRefusesLockedSource(t *testing.T) {
	items := testItems()
	items, _ = ToggleLock(items, "d")

	// dragging the locked item itself is rejected
	out := Reorder(items, 2, 1, 0)
	assert.Equal(t, items, out)

	// moving an unlocked neighbor around it is fine; the locked item's
	// content is unchanged even when its numeric position shifts
	out = Reorder(items, 2, 0, 2)
	assert.Equal(t, []string{"d", "e", "c"}, idsForDay(out, 2))
	for _, item := range out {
		if item.ItemID == "d" {
			assert.True(t, item.Locked)
			assert.Equal(t, "Creole Lunch", item.Title)
		}
	}
}

func TestSyncDaysProducesExactDaySet(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-03-15", "2024-03-15", 1},
		{"march 15 to 18 inclusive", "2024-03-15", "2024-03-18", 4},
		{"full week", "2024-06-01", "2024-06-07", 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := SyncDaysFromTripDates(testItems(), models.TripData{
				StartDate: tc.start,
				EndDate:   tc.end,
			})

			want := make([]int, 0, tc.want)
			for d := 1; d <= tc.want; d++ {
				want = append(want, d)
			}
			assert.Equal(t, want, Days(out))
		})
	}
}

func TestSyncDaysTrimsAndFills(t *testing.T) {
	out := SyncDaysFromTripDates(testItems(), models.TripData{
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
	})

	// day 3 trimmed, days 1 and 2 untouched
	assert.Equal(t, []int{1, 2}, Days(out))
	assert.Equal(t, []string{"a", "b"}, idsForDay(out, 1))
	assert.Equal(t, []string{"c", "d", "e"}, idsForDay(out, 2))

	// a longer trip backfills placeholders for the empty days
	out = SyncDaysFromTripDates(testItems(), models.TripData{
		StartDate: "2024-03-15",
		EndDate:   "2024-03-19",
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Days(out))
	for _, day := range []int{4, 5} {
		dayItems := DayItems(out, day)
		require.Len(t, dayItems, 1)
		assert.Equal(t, fmt.Sprintf("Free time - Day %d", day), dayItems[0].Title)
		assert.Equal(t, models.CategoryActivity, dayItems[0].Category)
		assert.Equal(t, "Mauritius", dayItems[0].Location)
	}
}

func TestSyncDaysInvalidDatesAreNoop(t *testing.T) {
	items := testItems()

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"unparseable start", "yesterday", "2024-03-18"},
		{"unparseable end", "2024-03-15", "soon"},
		{"both empty", "", ""},
		{"end before start", "2024-03-18", "2024-03-15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := SyncDaysFromTripDates(items, models.TripData{
				StartDate: tc.start,
				EndDate:   tc.end,
			})
			assert.Equal(t, items, out)
		})
	}
}

func TestGeneratePlanDeterministicTemplate(t *testing.T) {
	for _, n := range []int{1, 3, 30} {
		out := GeneratePlan(n)

		require.Len(t, out, 2*n, "days=%d", n)
		for d := 1; d <= n; d++ {
			dayItems := DayItems(out, d)
			require.Len(t, dayItems, 2)
			assert.Equal(t, fmt.Sprintf("Morning exploration Day %d", d), dayItems[0].Title)
			assert.Equal(t, "09:00", dayItems[0].Time)
			assert.Equal(t, models.CategoryActivity, dayItems[0].Category)
			assert.Equal(t, fmt.Sprintf("Local lunch Day %d", d), dayItems[1].Title)
			assert.Equal(t, "13:00", dayItems[1].Time)
			assert.Equal(t, models.CategoryMeal, dayItems[1].Category)
		}
	}
}

func TestGeneratePlanClampsDayCount(t *testing.T) {
	assert.Len(t, GeneratePlan(0), 2)
	assert.Len(t, GeneratePlan(-5), 2)
	assert.Len(t, GeneratePlan(45), 60)
}

func TestDaysSortedUnique(t *testing.T) {
	items := []models.ItineraryItem{
		{ItemID: "x", Day: 3},
		{ItemID: "y", Day: 1},
		{ItemID: "z", Day: 3},
	}
	assert.Equal(t, []int{1, 3}, Days(items))
}
