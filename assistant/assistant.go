// Package assistant is the AI travel chat pipeline: emergency screening,
// concurrent context gathering (activity catalog, weather, web search, user
// preferences), prompt composition, the model call and the capped
// conversation history.
package assistant

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"dreamtrip/activities"
	"dreamtrip/chatstream"
	"dreamtrip/itinerary"
	"dreamtrip/models"
	"dreamtrip/trip"
	"dreamtrip/utils"
	"dreamtrip/weather"
	"dreamtrip/websearch"

	"github.com/julienschmidt/httprouter"
)

type WeatherSource interface {
	Current(ctx context.Context, city string) (models.WeatherReport, error)
}

type SearchSource interface {
	Search(ctx context.Context, message string) ([]models.SearchResult, error)
}

// Service wires the context sources and the model together. The fields are
// interfaces so tests can swap in fakes.
type Service struct {
	Weather    WeatherSource
	Search     SearchSource
	LLM        Completer
	Activities func(ctx context.Context) ([]models.Activity, error)
	Prefs      func(ctx context.Context, userID string) (models.UserPreferences, bool, error)
}

func NewService() *Service {
	return &Service{
		Weather: weather.NewClient(),
		Search:  websearch.NewClient(),
		LLM:     newOpenAIClient(),
		Activities: func(ctx context.Context) ([]models.Activity, error) {
			return activities.Fetch(ctx, "", 50)
		},
		Prefs: LoadPreferences,
	}
}

// contextBundle holds the four independently gathered slots. A failed source
// leaves its slot empty; the pipeline never fails because one source did.
type contextBundle struct {
	Activities []models.Activity
	Weather    *models.WeatherReport
	Search     []models.SearchResult
	Prefs      *models.UserPreferences
}

func (s *Service) gatherContext(ctx context.Context, userID, location, message string) contextBundle {
	var bundle contextBundle
	var wg sync.WaitGroup

	wg.Add(4)

	go func() {
		defer wg.Done()
		result, err := s.Activities(ctx)
		if err != nil {
			log.Printf("assistant: activities fetch failed: %v", err)
			return
		}
		bundle.Activities = result
	}()

	go func() {
		defer wg.Done()
		report, err := s.Weather.Current(ctx, location)
		if err != nil {
			log.Printf("assistant: weather fetch failed: %v", err)
			return
		}
		bundle.Weather = &report
	}()

	go func() {
		defer wg.Done()
		results, err := s.Search.Search(ctx, message)
		if err != nil {
			log.Printf("assistant: web search failed: %v", err)
			return
		}
		bundle.Search = results
	}()

	go func() {
		defer wg.Done()
		if userID == "" {
			return
		}
		prefs, found, err := s.Prefs(ctx, userID)
		if err != nil {
			log.Printf("assistant: preferences fetch failed: %v", err)
			return
		}
		if found {
			bundle.Prefs = &prefs
		}
	}()

	wg.Wait()
	return bundle
}

type chatRequest struct {
	Message      string `json:"message"`
	UserLocation string `json:"userLocation"`
}

// POST /api/assistant/chat
func (s *Service) Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message is required")
		return
	}

	body, status := s.respond(ctx, utils.GetUserIDFromRequest(r), req)
	utils.RespondWithJSON(w, status, body)
}

// respond runs the full pipeline for one message and returns the response
// body with its HTTP status. Shared by the REST and WebSocket transports.
func (s *Service) respond(ctx context.Context, userID string, req chatRequest) (utils.M, int) {
	// emergency messages never reach the model
	if card := CheckEmergency(req.Message); card != "" {
		return utils.M{
			"response":    card,
			"success":     true,
			"isEmergency": true,
		}, http.StatusOK
	}

	var snap models.ItinerarySnapshot
	var tripData *models.TripData
	if userID != "" {
		var err error
		snap, err = itinerary.LoadSnapshot(ctx, userID)
		if err != nil {
			log.Printf("assistant: itinerary load failed: %v", err)
		}
		if stored, found, err := trip.Load(ctx, userID); err == nil && found {
			tripData = &stored
		}
	}

	bundle := s.gatherContext(ctx, userID, req.UserLocation, req.Message)

	analysis := ""
	if bundle.Prefs != nil {
		analysis = AnalyzePreferences(bundle.Prefs.Interactions)
	}

	systemPrompt := buildSystemPrompt(promptInput{
		Trip:        tripData,
		SelectedDay: snap.SelectedDay,
		Itinerary:   snap.Items,
		Activities:  bundle.Activities,
		Weather:     bundle.Weather,
		Search:      bundle.Search,
		Analysis:    analysis,
	})
	userPrompt := buildUserPrompt(req.Message, snap.SelectedDay)

	reply, err := s.LLM.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("assistant: completion failed: %v", err)
		return utils.M{
			"error":    err.Error(),
			"response": fallbackMessage(err),
			"success":  false,
		}, http.StatusInternalServerError
	}

	if userID != "" {
		condition := ""
		if bundle.Weather != nil {
			condition = bundle.Weather.Condition
		}
		interaction := models.Interaction{
			ID:          utils.GetUUID(),
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			UserMessage: req.Message,
			AIResponse:  reply,
			Context: models.InteractionContext{
				SelectedDay:        snap.SelectedDay,
				ItineraryCount:     len(snap.Items),
				WeatherCondition:   condition,
				SearchResultsCount: len(bundle.Search),
			},
		}
		if err := AppendInteraction(ctx, userID, interaction); err != nil {
			log.Printf("assistant: history save failed: %v", err)
		}
		chatstream.Publish(userID, chatstream.Event{Type: "assistant", Payload: interaction})
	}

	return utils.M{
		"response": reply,
		"success":  true,
		"contextData": utils.M{
			"weatherIncluded":    bundle.Weather != nil,
			"searchResultsCount": len(bundle.Search),
			"activitiesCount":    len(bundle.Activities),
			"hasUserPreferences": bundle.Prefs != nil,
		},
	}, http.StatusOK
}

// fallbackMessage keeps the chat widget conversational when the pipeline
// fails, classified by what broke.
func fallbackMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "OpenAI"):
		return "I'm having trouble connecting to my AI brain. Let me try to help you with what I know about Mauritius!"
	case strings.Contains(msg, "API"):
		return "Some of my data sources are temporarily unavailable, but I can still provide general travel advice for Mauritius."
	default:
		return "I encountered an unexpected issue, but I'm still here to help with your Mauritius travel plans!"
	}
}

// GET /api/assistant/history
func GetHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	prefs, found, err := LoadPreferences(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	if !found {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"interactions":         []models.Interaction{},
			"preferences_analysis": "",
		})
		return
	}
	if prefs.Interactions == nil {
		prefs.Interactions = []models.Interaction{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"interactions":         prefs.Interactions,
		"preferences_analysis": prefs.Analysis,
	})
}
