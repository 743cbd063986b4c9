package models

// InteractionContext is the lightweight snapshot stored with each exchange.
type InteractionContext struct {
	SelectedDay        int    `json:"selected_day" bson:"selectedday"`
	ItineraryCount     int    `json:"itinerary_count" bson:"itinerarycount"`
	WeatherCondition   string `json:"weather_condition,omitempty" bson:"weathercondition,omitempty"`
	SearchResultsCount int    `json:"search_results_count" bson:"searchresultscount"`
}

// Interaction is one user message / AI response pair in the capped history.
type Interaction struct {
	ID          string             `json:"id" bson:"id"`
	Timestamp   string             `json:"timestamp" bson:"timestamp"`
	UserMessage string             `json:"user_message" bson:"usermessage"`
	AIResponse  string             `json:"ai_response" bson:"airesponse"`
	Context     InteractionContext `json:"context" bson:"context"`
}

// UserPreferences is the per-user document holding the interaction log
// (most recent 50) and the derived preference summary.
type UserPreferences struct {
	UserID       string        `json:"userid" bson:"userid"`
	Interactions []Interaction `json:"ai_interactions" bson:"interactions"`
	Analysis     string        `json:"preferences_analysis" bson:"analysis"`
	UpdatedAt    string        `json:"updated_at" bson:"updatedat"`
}

// WeatherReport is the condensed current-weather block for one location.
type WeatherReport struct {
	Temperature     int      `json:"temperature"`
	Condition       string   `json:"condition"`
	Humidity        int      `json:"humidity"`
	WindSpeed       int      `json:"windSpeed"` // km/h
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// SearchResult is one web-search hit from the travel-content search.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
