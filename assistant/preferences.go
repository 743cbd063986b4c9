package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dreamtrip/db"
	"dreamtrip/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxInteractions = 50

var preferenceBuckets = []struct {
	name     string
	keywords []string
	interest string
}{
	{"outdoor", []string{"beach", "swim", "snorkel"}, "water activities"},
	{"food", []string{"food", "restaurant", "eat"}, "cuisine"},
	{"cultural", []string{"culture", "temple", "museum"}, "culture"},
	{"adventure", []string{"adventure", "hike", "extreme"}, "adventure"},
	{"relaxation", []string{"spa", "relax", "resort"}, "wellness"},
}

// tie order: the earlier name wins when counts are equal.
var preferenceOrder = []string{"outdoor", "cultural", "food", "adventure", "relaxation"}

// AnalyzePreferences summarises the user's last ten interactions into a one
// line preference statement for the system prompt.
func AnalyzePreferences(interactions []models.Interaction) string {
	if len(interactions) == 0 {
		return "New user - providing general recommendations"
	}

	recent := interactions
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	counts := make(map[string]int, len(preferenceBuckets))
	var interests []string
	seen := make(map[string]bool)

	for _, interaction := range recent {
		message := strings.ToLower(interaction.UserMessage)
		for _, bucket := range preferenceBuckets {
			for _, keyword := range bucket.keywords {
				if strings.Contains(message, keyword) {
					counts[bucket.name]++
					if !seen[bucket.interest] {
						seen[bucket.interest] = true
						interests = append(interests, bucket.interest)
					}
					break
				}
			}
		}
	}

	top := preferenceOrder[0]
	best := counts[top]
	for _, name := range preferenceOrder[1:] {
		if counts[name] > best {
			top = name
			best = counts[name]
		}
	}

	return fmt.Sprintf("User shows preference for %s activities. Interests: %s",
		top, strings.Join(interests, ", "))
}

// LoadPreferences fetches the preference document, ok=false when the user
// has none yet.
func LoadPreferences(ctx context.Context, userID string) (models.UserPreferences, bool, error) {
	var prefs models.UserPreferences
	err := db.PreferencesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return models.UserPreferences{}, false, nil
	}
	if err != nil {
		return models.UserPreferences{}, false, err
	}
	return prefs, true, nil
}

// AppendInteraction pushes one exchange onto the history, drops the oldest
// entries beyond the cap and refreshes the preference analysis.
func AppendInteraction(ctx context.Context, userID string, interaction models.Interaction) error {
	prefs, _, err := LoadPreferences(ctx, userID)
	if err != nil {
		return err
	}

	prefs.UserID = userID
	prefs.Interactions = trimHistory(append(prefs.Interactions, interaction))
	prefs.Analysis = AnalyzePreferences(prefs.Interactions)
	prefs.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	opts := options.Replace().SetUpsert(true)
	_, err = db.PreferencesCollection.ReplaceOne(ctx, bson.M{"userid": userID}, prefs, opts)
	return err
}

func trimHistory(interactions []models.Interaction) []models.Interaction {
	if len(interactions) <= maxInteractions {
		return interactions
	}
	return interactions[len(interactions)-maxInteractions:]
}
