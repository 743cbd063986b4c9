package assistant

import (
	"fmt"
	"strings"

	"dreamtrip/models"
	"dreamtrip/utils"
)

// promptInput is everything the system prompt is composed from. Slots left
// at their zero value simply produce shorter prompts.
type promptInput struct {
	Trip        *models.TripData
	SelectedDay int
	Itinerary   []models.ItineraryItem
	Activities  []models.Activity
	Weather     *models.WeatherReport
	Search      []models.SearchResult
	Analysis    string
}

func buildSystemPrompt(in promptInput) string {
	var b strings.Builder

	b.WriteString("You are an advanced AI travel assistant specializing in Mauritius with real-time capabilities. ")
	b.WriteString("You have access to current weather data, recent travel information from the web, and user preference analysis.\n\n")

	b.WriteString("**CURRENT CONTEXT:**\n")
	if in.Trip != nil {
		fmt.Fprintf(&b, "- User's Trip: Budget: %g, Style: %s, Group: %d people\n",
			in.Trip.Budget, in.Trip.TravelStyle, in.Trip.GroupSize)
	} else {
		b.WriteString("- User's Trip: Not available\n")
	}
	if in.SelectedDay > 0 {
		fmt.Fprintf(&b, "- Current Day Focus: Day %d\n", in.SelectedDay)
	} else {
		b.WriteString("- Current Day Focus: Day Not specified\n")
	}
	fmt.Fprintf(&b, "- Itinerary Items: %d planned activities\n", len(in.Itinerary))

	b.WriteString("\n**CURRENT ITINERARY OVERVIEW:**\n")
	if len(in.Itinerary) == 0 {
		b.WriteString("No itinerary provided\n")
	} else {
		for _, item := range in.Itinerary {
			fmt.Fprintf(&b, "Day %d: %s at %s (%s)\n", item.Day, item.Title, item.Time, item.Location)
		}
	}

	if len(in.Activities) > 0 {
		b.WriteString("\n**MAURITIUS ACTIVITIES DATABASE:**\n")
		shown := in.Activities
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, activity := range shown {
			cost := "Price varies"
			if activity.CostEstimate > 0 {
				cost = fmt.Sprintf("$%g", activity.CostEstimate)
			}
			fmt.Fprintf(&b, "- %s (%s, %s) - %s\n", activity.Title, activity.Category, activity.Location, cost)
		}
	}

	if in.Weather != nil {
		b.WriteString("\n**CURRENT WEATHER IN MAURITIUS:**\n")
		fmt.Fprintf(&b, "- Temperature: %d°C\n", in.Weather.Temperature)
		fmt.Fprintf(&b, "- Condition: %s (%s)\n", in.Weather.Condition, in.Weather.Description)
		fmt.Fprintf(&b, "- Humidity: %d%%\n", in.Weather.Humidity)
		fmt.Fprintf(&b, "- Wind Speed: %d km/h\n", in.Weather.WindSpeed)
		fmt.Fprintf(&b, "- Weather Recommendations: %s\n", strings.Join(in.Weather.Recommendations, ", "))
	}

	if len(in.Search) > 0 {
		b.WriteString("\n**RECENT TRAVEL INFORMATION:**\n")
		shown := in.Search
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for i, result := range shown {
			fmt.Fprintf(&b, "%d. %s\n   %s...\n   Source: %s\n",
				i+1, result.Title, utils.Truncate(result.Content, 200), result.URL)
		}
	}

	if in.Analysis != "" {
		b.WriteString("\n**USER PREFERENCE ANALYSIS:**\n")
		b.WriteString(in.Analysis)
		b.WriteString("\n")
	}

	b.WriteString(`
**ENHANCED INSTRUCTIONS:**
- Provide specific, actionable travel advice with real-time context
- Use weather data to make activity recommendations
- Reference recent web information when relevant
- Consider user's historical preferences and patterns
- Include practical details: costs, timing, locations, weather suitability
- For restaurant/activity suggestions, provide specific names and locations
- Help optimize routes based on weather and user preferences
- Format responses with clear sections using bullet points and headings
- Always cite sources when using web search information
- Be concise but comprehensive in your recommendations`)

	return b.String()
}

func buildUserPrompt(message string, selectedDay int) string {
	focus := "reviewing my itinerary"
	if selectedDay > 0 {
		focus = fmt.Sprintf("planning Day %d", selectedDay)
	}
	return fmt.Sprintf("%s\n\nContext: I'm currently %s of my Mauritius trip.", message, focus)
}
