// Package weather fetches current conditions from OpenWeatherMap and maps
// them to activity recommendations. Responses are cached for a few minutes
// so repeated assistant calls don't burn through the API quota.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"dreamtrip/models"

	"github.com/patrickmn/go-cache"
)

const (
	baseURL     = "https://api.openweathermap.org/data/2.5/weather"
	DefaultCity = "Port Louis, Mauritius"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

func NewClient() *Client {
	return &Client{
		apiKey:     os.Getenv("OPENWEATHER_API_KEY"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache.New(10*time.Minute, 30*time.Minute),
	}
}

// NewClientWithURL points the client at a custom endpoint, for tests.
func NewClientWithURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache.New(10*time.Minute, 30*time.Minute),
	}
}

type apiResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns the weather report for a city. city may be empty, in which
// case the default Mauritius city is used.
func (c *Client) Current(ctx context.Context, city string) (models.WeatherReport, error) {
	if city == "" {
		city = DefaultCity
	}
	if c.apiKey == "" {
		return models.WeatherReport{}, fmt.Errorf("weather: missing OPENWEATHER_API_KEY")
	}

	if cached, ok := c.cache.Get(city); ok {
		return cached.(models.WeatherReport), nil
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherReport{}, fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.WeatherReport{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReport{}, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherReport{}, fmt.Errorf("weather: read body: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.WeatherReport{}, fmt.Errorf("weather: decode json: %w", err)
	}
	if len(raw.Weather) == 0 {
		return models.WeatherReport{}, fmt.Errorf("weather: empty conditions in response")
	}

	report := models.WeatherReport{
		Temperature: int(math.Round(raw.Main.Temp)),
		Condition:   raw.Weather[0].Main,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   int(math.Round(raw.Wind.Speed * 3.6)), // m/s to km/h
		Description: raw.Weather[0].Description,
	}
	report.Recommendations = Recommendations(report)

	c.cache.Set(city, report, cache.DefaultExpiration)
	return report, nil
}

// Recommendations derives activity suggestions from temperature, condition
// and wind. The rules mirror how locals plan a day on the island.
func Recommendations(report models.WeatherReport) []string {
	var recs []string

	if report.Temperature > 28 {
		recs = append(recs,
			"Perfect for beach activities and water sports",
			"Consider indoor attractions during midday heat",
		)
	} else if report.Temperature < 20 {
		recs = append(recs,
			"Great weather for hiking and outdoor exploration",
			"Ideal for visiting botanical gardens and markets",
		)
	}

	condition := strings.ToLower(report.Condition)
	switch {
	case strings.Contains(condition, "rain"):
		recs = append(recs,
			"Visit museums, shopping centers, or covered markets",
			"Perfect time for spa treatments or cultural experiences",
		)
	case strings.Contains(condition, "clear"), strings.Contains(condition, "sun"):
		recs = append(recs,
			"Excellent for snorkeling, diving, or beach activities",
			"Great for photography and sightseeing",
		)
	}

	if report.WindSpeed > 20 {
		recs = append(recs, "Excellent conditions for kite surfing or windsurfing")
	}

	return recs
}
