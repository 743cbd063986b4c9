package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"dreamtrip/models"
	"dreamtrip/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmergencyMatchesKeywords(t *testing.T) {
	cases := []string{
		"I need help, there's been an accident",
		"where is the nearest HOSPITAL",
		"my friend is sick",
		"EMERGENCY!!",
	}
	for _, message := range cases {
		card := CheckEmergency(message)
		require.NotEmpty(t, card, "message: %q", message)
		assert.Contains(t, card, "Police: 999 or 112")
		assert.Contains(t, card, "Tourist Police: +230 210 3894")
	}
}

// "help" is a substring keyword, so even planning questions that contain it
// trigger the emergency card. That aggressive matching is intentional.
func TestCheckEmergencySubstringMatching(t *testing.T) {
	assert.NotEmpty(t, CheckEmergency("help me plan my trip"))
	assert.NotEmpty(t, CheckEmergency("is the waterfall dangerous"))

	assert.Empty(t, CheckEmergency("best beaches in the north"))
	assert.Empty(t, CheckEmergency("what should I eat in Port Louis"))
}

func interactionsWith(messages ...string) []models.Interaction {
	out := make([]models.Interaction, len(messages))
	for i, m := range messages {
		out[i] = models.Interaction{ID: fmt.Sprint(i), UserMessage: m}
	}
	return out
}

func TestAnalyzePreferencesNewUser(t *testing.T) {
	assert.Equal(t, "New user - providing general recommendations", AnalyzePreferences(nil))
}

func TestAnalyzePreferencesTopBucket(t *testing.T) {
	analysis := AnalyzePreferences(interactionsWith(
		"where can I snorkel",
		"good beach for swimming",
		"any nice restaurant nearby",
	))
	assert.Equal(t, "User shows preference for outdoor activities. Interests: water activities, cuisine", analysis)
}

func TestAnalyzePreferencesTieBreaksInFixedOrder(t *testing.T) {
	// one cultural and one food mention; cultural wins the tie
	analysis := AnalyzePreferences(interactionsWith(
		"which museum should I visit",
		"best street food",
	))
	assert.True(t, strings.HasPrefix(analysis, "User shows preference for cultural activities."), analysis)
}

func TestAnalyzePreferencesOnlyLastTenCount(t *testing.T) {
	var messages []string
	messages = append(messages, "I love spa days and relaxing at the resort")
	messages = append(messages, "another spa day please", "relax relax relax")
	for i := 0; i < 10; i++ {
		messages = append(messages, "good hike for an adventure")
	}

	analysis := AnalyzePreferences(interactionsWith(messages...))
	assert.Contains(t, analysis, "preference for adventure activities")
	assert.NotContains(t, analysis, "wellness")
}

func TestTrimHistoryCapsAtFifty(t *testing.T) {
	var interactions []models.Interaction
	for i := 0; i < 55; i++ {
		interactions = append(interactions, models.Interaction{ID: fmt.Sprint(i)})
	}

	trimmed := trimHistory(interactions)
	require.Len(t, trimmed, 50)
	assert.Equal(t, "5", trimmed[0].ID)
	assert.Equal(t, "54", trimmed[49].ID)

	short := trimHistory(interactions[:3])
	assert.Len(t, short, 3)
}

type fakeWeather struct {
	report models.WeatherReport
	err    error
}

func (f fakeWeather) Current(ctx context.Context, city string) (models.WeatherReport, error) {
	return f.report, f.err
}

type fakeSearch struct {
	results []models.SearchResult
	err     error
}

func (f fakeSearch) Search(ctx context.Context, message string) ([]models.SearchResult, error) {
	return f.results, f.err
}

func testService(weatherErr, searchErr, activitiesErr bool) *Service {
	s := &Service{
		Weather: fakeWeather{report: models.WeatherReport{Temperature: 29, Condition: "Clear"}},
		Search:  fakeSearch{results: []models.SearchResult{{Title: "Beaches"}}},
		Activities: func(ctx context.Context) ([]models.Activity, error) {
			return []models.Activity{{Title: "Snorkeling at Blue Bay Marine Park"}}, nil
		},
		Prefs: func(ctx context.Context, userID string) (models.UserPreferences, bool, error) {
			return models.UserPreferences{UserID: userID}, true, nil
		},
	}
	if weatherErr {
		s.Weather = fakeWeather{err: errors.New("weather API down")}
	}
	if searchErr {
		s.Search = fakeSearch{err: errors.New("search API down")}
	}
	if activitiesErr {
		s.Activities = func(ctx context.Context) ([]models.Activity, error) {
			return nil, errors.New("db down")
		}
	}
	return s
}

func TestGatherContextAllSourcesFulfilled(t *testing.T) {
	bundle := testService(false, false, false).gatherContext(context.Background(), "u1", "", "beaches")

	require.NotNil(t, bundle.Weather)
	assert.Equal(t, "Clear", bundle.Weather.Condition)
	assert.Len(t, bundle.Search, 1)
	assert.Len(t, bundle.Activities, 1)
	require.NotNil(t, bundle.Prefs)
	assert.Equal(t, "u1", bundle.Prefs.UserID)
}

func TestGatherContextFailedSlotsStayEmpty(t *testing.T) {
	bundle := testService(true, true, false).gatherContext(context.Background(), "u1", "", "beaches")

	assert.Nil(t, bundle.Weather)
	assert.Empty(t, bundle.Search)
	assert.Len(t, bundle.Activities, 1)
	assert.NotNil(t, bundle.Prefs)

	bundle = testService(false, false, true).gatherContext(context.Background(), "", "", "beaches")
	assert.Empty(t, bundle.Activities)
	assert.Nil(t, bundle.Prefs, "anonymous users have no preferences")
	assert.NotNil(t, bundle.Weather)
}

func TestFallbackMessageClassification(t *testing.T) {
	assert.Equal(t,
		"I'm having trouble connecting to my AI brain. Let me try to help you with what I know about Mauritius!",
		fallbackMessage(errors.New("OpenAI API error: status 429")))
	assert.Equal(t,
		"Some of my data sources are temporarily unavailable, but I can still provide general travel advice for Mauritius.",
		fallbackMessage(errors.New("weather API error: status 503")))
	assert.Equal(t,
		"I encountered an unexpected issue, but I'm still here to help with your Mauritius travel plans!",
		fallbackMessage(errors.New("context deadline exceeded")))
}

type fakeCompleter struct {
	reply string
	err   error
}

func (f fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.reply, f.err
}

func TestRespondEmergencyShortCircuits(t *testing.T) {
	// no LLM wired: an emergency message must be answered before any model call
	s := testService(false, false, false)

	body, status := s.respond(context.Background(), "", chatRequest{Message: "I had an accident"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["isEmergency"])
	assert.Contains(t, body["response"], "999")
}

func TestRespondModelFailureReturnsFallback(t *testing.T) {
	s := testService(false, false, false)
	s.LLM = fakeCompleter{err: errors.New("OpenAI API error: status 500")}

	body, status := s.respond(context.Background(), "", chatRequest{Message: "plan a beach day"})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["response"], "AI brain")
}

func TestRespondReportsPartialContext(t *testing.T) {
	s := testService(true, false, false)
	s.LLM = fakeCompleter{reply: "Try Blue Bay for snorkeling."}

	body, status := s.respond(context.Background(), "", chatRequest{Message: "plan a beach day"})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	contextData := body["contextData"].(utils.M)
	assert.False(t, contextData["weatherIncluded"].(bool))
	assert.Equal(t, 1, contextData["searchResultsCount"])
	assert.Equal(t, 1, contextData["activitiesCount"])
}
