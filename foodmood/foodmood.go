// Package foodmood recommends Mauritian dishes from a curated catalog based
// on mood tags and a free-text query.
package foodmood

import (
	"encoding/json"
	"net/http"
	"strings"

	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/samber/lo"
)

// Dish is one catalog entry. Moods are free-form tags matched against the
// user's selected moods.
type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Emoji       string   `json:"image"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"priceRange"`
	CookingTime string   `json:"cookingTime"`
	Moods       []string `json:"mood"`
	Ingredients []string `json:"ingredients"`
	Type        string   `json:"type"`
}

// Moods selectable in the UI, in display order.
var moodOptions = []map[string]string{
	{"emoji": "😋", "mood": "craving", "label": "Craving Something"},
	{"emoji": "🌶️", "mood": "spicy", "label": "Spicy Mood"},
	{"emoji": "🥗", "mood": "healthy", "label": "Healthy Choice"},
	{"emoji": "🍖", "mood": "hearty", "label": "Hearty & Filling"},
	{"emoji": "🐟", "mood": "seafood", "label": "Fresh Seafood"},
	{"emoji": "🥥", "mood": "tropical", "label": "Tropical Vibes"},
	{"emoji": "🍯", "mood": "sweet", "label": "Sweet Tooth"},
	{"emoji": "🌿", "mood": "fresh", "label": "Light & Fresh"},
	{"emoji": "🔥", "mood": "comfort", "label": "Comfort Food"},
	{"emoji": "🎉", "mood": "festive", "label": "Celebration Food"},
}

var dishes = []Dish{
	{
		ID:          "1",
		Name:        "Dholl Puri",
		Description: "Mauritius' most famous street food - thin flatbread filled with split peas, served with curry, chutney, and pickles.",
		Emoji:       "🫓",
		Location:    "Street vendors across Port Louis",
		PriceRange:  "$2-5",
		CookingTime: "15-20 mins",
		Moods:       []string{"comfort", "craving", "local"},
		Ingredients: []string{"Split peas", "Flour", "Curry", "Chutney"},
		Type:        "street-food",
	},
	{
		ID:          "2",
		Name:        "Fish Vindaye",
		Description: "Traditional Mauritian fish curry with mustard seeds, turmeric, and vinegar. A perfect blend of Indian and Creole flavors.",
		Emoji:       "🐟",
		Location:    "Local restaurants in Grand Baie",
		PriceRange:  "$8-15",
		CookingTime: "30-45 mins",
		Moods:       []string{"seafood", "spicy", "hearty"},
		Ingredients: []string{"Fresh fish", "Mustard seeds", "Turmeric", "Vinegar"},
		Type:        "local",
	},
	{
		ID:          "3",
		Name:        "Tropical Fruit Salad",
		Description: "Fresh mix of tropical fruits including lychee, mango, papaya, and passion fruit with a hint of lime.",
		Emoji:       "🥭",
		Location:    "Beach cafes in Flic en Flac",
		PriceRange:  "$5-8",
		CookingTime: "10 mins",
		Moods:       []string{"tropical", "fresh", "healthy", "sweet"},
		Ingredients: []string{"Mango", "Lychee", "Papaya", "Passion fruit"},
		Type:        "restaurant",
	},
	{
		ID:          "4",
		Name:        "Octopus Curry",
		Description: "Tender octopus cooked in aromatic spices with coconut milk. A beloved seafood dish among locals.",
		Emoji:       "🐙",
		Location:    "Mahebourg waterfront restaurants",
		PriceRange:  "$12-20",
		CookingTime: "1 hour",
		Moods:       []string{"seafood", "spicy", "festive"},
		Ingredients: []string{"Octopus", "Coconut milk", "Curry spices", "Onions"},
		Type:        "restaurant",
	},
	{
		ID:          "5",
		Name:        "Alouda",
		Description: "Refreshing drink made with milk, basil seeds, agar-agar jelly, and flavored syrup. Perfect for hot days.",
		Emoji:       "🥤",
		Location:    "Street vendors in Port Louis",
		PriceRange:  "$1-3",
		CookingTime: "5 mins",
		Moods:       []string{"sweet", "fresh", "tropical"},
		Ingredients: []string{"Milk", "Basil seeds", "Agar jelly", "Syrup"},
		Type:        "street-food",
	},
	{
		ID:          "6",
		Name:        "Rougaille Saucisse",
		Description: "Mauritian sausage stew with tomatoes, onions, and thyme. A hearty comfort food perfect for dinner.",
		Emoji:       "🌭",
		Location:    "Home-style restaurants in Curepipe",
		PriceRange:  "$6-12",
		CookingTime: "45 mins",
		Moods:       []string{"comfort", "hearty", "festive"},
		Ingredients: []string{"Sausages", "Tomatoes", "Onions", "Thyme"},
		Type:        "local",
	},
}

// Match filters the catalog by mood tags and a free-text query. A dish
// matches when any selected mood appears in its tags AND the query matches
// its name, description or an ingredient. With no exact match the first
// three catalog dishes come back as popular fallbacks.
func Match(moods []string, query string) (matches []Dish, exact bool) {
	query = strings.ToLower(strings.TrimSpace(query))

	matches = lo.Filter(dishes, func(dish Dish, _ int) bool {
		moodMatch := len(moods) == 0 || lo.Some(dish.Moods, moods)
		if !moodMatch {
			return false
		}
		if query == "" {
			return true
		}
		if strings.Contains(strings.ToLower(dish.Name), query) ||
			strings.Contains(strings.ToLower(dish.Description), query) {
			return true
		}
		return lo.SomeBy(dish.Ingredients, func(ingredient string) bool {
			return strings.Contains(strings.ToLower(ingredient), query)
		})
	})

	if len(matches) == 0 {
		return dishes[:3], false
	}
	return matches, true
}

// GET /api/foodmood/moods
func GetMoods(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"moods": moodOptions})
}

// POST /api/foodmood/match
func MatchDishes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Moods []string `json:"moods"`
		Query string   `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(req.Moods) == 0 && strings.TrimSpace(req.Query) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Select a mood or enter a search")
		return
	}

	matches, exact := Match(req.Moods, req.Query)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"recommendations": matches,
		"exactMatch":      exact,
	})
}
