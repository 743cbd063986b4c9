package models

// TripData is the onboarding form: dates, budget, style, group size and
// free-text preferences. Read-only input for the itinerary and assistant.
type TripData struct {
	UserID      string  `json:"userid,omitempty" bson:"userid"`
	StartDate   string  `json:"startDate" bson:"startdate"` // YYYY-MM-DD
	EndDate     string  `json:"endDate" bson:"enddate"`
	Budget      float64 `json:"budget" bson:"budget"`
	TravelStyle string  `json:"travelStyle" bson:"travelstyle"`
	GroupSize   int     `json:"groupSize" bson:"groupsize"`
	Preferences string  `json:"preferences" bson:"preferences"`
}

// Activity is a curated local activity row fed into the assistant prompt.
type Activity struct {
	ActivityID   string  `json:"activityid" bson:"activityid"`
	Title        string  `json:"title" bson:"title"`
	Category     string  `json:"category" bson:"category"`
	Location     string  `json:"location" bson:"location"`
	Description  string  `json:"description" bson:"description"`
	CostEstimate float64 `json:"costEstimateUSD" bson:"costestimateusd"`
}

// Expense is one budget-tracker entry.
type Expense struct {
	ExpenseID   string  `json:"id" bson:"expenseid"`
	UserID      string  `json:"userid,omitempty" bson:"userid"`
	Category    string  `json:"category" bson:"category"`
	Description string  `json:"description" bson:"description"`
	Amount      float64 `json:"amount" bson:"amount"`
	Date        string  `json:"date" bson:"date"`
	Currency    string  `json:"currency" bson:"currency"`
}
