package models

// Categories an itinerary item can carry.
const (
	CategoryActivity      = "activity"
	CategoryMeal          = "meal"
	CategoryTransport     = "transport"
	CategoryAccommodation = "accommodation"
)

// ItineraryItem is one scheduled entry of a trip day.
type ItineraryItem struct {
	ItemID      string  `json:"id" bson:"itemid"`
	Day         int     `json:"day" bson:"day"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Time        string  `json:"time" bson:"time"` // HH:MM
	Location    string  `json:"location" bson:"location"`
	Latitude    float64 `json:"latitude" bson:"latitude"`
	Longitude   float64 `json:"longitude" bson:"longitude"`
	Locked      bool    `json:"isLocked" bson:"locked"`
	Category    string  `json:"category" bson:"category"`
}

// ItinerarySnapshot is the per-user itinerary document. It doubles as the
// shared planning state the assistant reads, so writers persist it on every
// mutation.
type ItinerarySnapshot struct {
	UserID      string          `json:"userid" bson:"userid"`
	Items       []ItineraryItem `json:"items" bson:"items"`
	SelectedDay int             `json:"selectedDay" bson:"selectedday"`
	ShareID     string          `json:"shareId,omitempty" bson:"shareid,omitempty"`
	UpdatedAt   string          `json:"updatedAt" bson:"updatedat"`
}
