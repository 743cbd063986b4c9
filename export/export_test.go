package export

import (
	"testing"
	"time"

	"dreamtrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStartUsesDayOffsetAndClock(t *testing.T) {
	tripStart, err := time.Parse("2006-01-02", "2024-03-15")
	require.NoError(t, err)

	start := itemStart(tripStart, models.ItineraryItem{
		Day:       3,
		Time:      "09:30",
		Latitude:  -20.348404,
		Longitude: 57.552152,
	})

	assert.Equal(t, 2024, start.Year())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 17, start.Day())
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 30, start.Minute())
	assert.Equal(t, "Indian/Mauritius", start.Location().String())
}

func TestItemStartBadClockFallsBackToTen(t *testing.T) {
	tripStart, _ := time.Parse("2006-01-02", "2024-03-15")

	start := itemStart(tripStart, models.ItineraryItem{Day: 1, Time: "all day"})
	assert.Equal(t, 10, start.Hour())
	assert.Equal(t, 15, start.Day())
}
