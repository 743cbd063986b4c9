package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dreamtrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsHotAndClear(t *testing.T) {
	recs := Recommendations(models.WeatherReport{Temperature: 30, Condition: "Clear", WindSpeed: 10})

	assert.Contains(t, recs, "Perfect for beach activities and water sports")
	assert.Contains(t, recs, "Consider indoor attractions during midday heat")
	assert.Contains(t, recs, "Excellent for snorkeling, diving, or beach activities")
	assert.NotContains(t, recs, "Excellent conditions for kite surfing or windsurfing")
}

func TestRecommendationsCoolAndRainy(t *testing.T) {
	recs := Recommendations(models.WeatherReport{Temperature: 18, Condition: "Rain", WindSpeed: 5})

	assert.Contains(t, recs, "Great weather for hiking and outdoor exploration")
	assert.Contains(t, recs, "Visit museums, shopping centers, or covered markets")
	assert.NotContains(t, recs, "Excellent for snorkeling, diving, or beach activities")
}

func TestRecommendationsWindy(t *testing.T) {
	recs := Recommendations(models.WeatherReport{Temperature: 25, Condition: "Clouds", WindSpeed: 25})

	assert.Equal(t, []string{"Excellent conditions for kite surfing or windsurfing"}, recs)
}

func TestRecommendationsMildDay(t *testing.T) {
	recs := Recommendations(models.WeatherReport{Temperature: 24, Condition: "Clouds", WindSpeed: 10})
	assert.Empty(t, recs)
}

func TestCurrentParsesAndConvertsWind(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"main": {"temp": 29.4, "humidity": 74},
			"weather": [{"main": "Clear", "description": "clear sky"}],
			"wind": {"speed": 6.2}
		}`)
	}))
	defer srv.Close()

	client := NewClientWithURL("test-key", srv.URL)
	report, err := client.Current(context.Background(), "")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "units=metric")
	assert.Contains(t, gotQuery, "appid=test-key")
	assert.Equal(t, 29, report.Temperature)
	assert.Equal(t, "Clear", report.Condition)
	assert.Equal(t, 74, report.Humidity)
	assert.Equal(t, 22, report.WindSpeed) // 6.2 m/s -> 22.32 -> 22 km/h
	assert.NotEmpty(t, report.Recommendations)
}

func TestCurrentCachesByCity(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{
			"main": {"temp": 25, "humidity": 60},
			"weather": [{"main": "Clouds", "description": "few clouds"}],
			"wind": {"speed": 3}
		}`)
	}))
	defer srv.Close()

	client := NewClientWithURL("test-key", srv.URL)
	_, err := client.Current(context.Background(), "Grand Baie")
	require.NoError(t, err)
	_, err = client.Current(context.Background(), "Grand Baie")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestCurrentErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClientWithURL("bad-key", srv.URL)
	_, err := client.Current(context.Background(), "Port Louis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")

	client = NewClientWithURL("", srv.URL)
	_, err = client.Current(context.Background(), "Port Louis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}
