package foodmood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dishNames(matches []Dish) []string {
	names := make([]string, len(matches))
	for i, dish := range matches {
		names[i] = dish.Name
	}
	return names
}

func TestMatchByMood(t *testing.T) {
	matches, exact := Match([]string{"seafood"}, "")

	assert.True(t, exact)
	assert.ElementsMatch(t, []string{"Fish Vindaye", "Octopus Curry"}, dishNames(matches))
}

func TestMatchAnyOfSelectedMoods(t *testing.T) {
	matches, exact := Match([]string{"sweet", "comfort"}, "")

	assert.True(t, exact)
	assert.ElementsMatch(t,
		[]string{"Dholl Puri", "Tropical Fruit Salad", "Alouda", "Rougaille Saucisse"},
		dishNames(matches))
}

func TestMatchQueryAgainstNameAndIngredients(t *testing.T) {
	matches, exact := Match(nil, "octopus")
	require.True(t, exact)
	assert.Equal(t, []string{"Octopus Curry"}, dishNames(matches))

	// ingredient match, case-insensitive
	matches, exact = Match(nil, "MANGO")
	require.True(t, exact)
	assert.Equal(t, []string{"Tropical Fruit Salad"}, dishNames(matches))
}

func TestMatchMoodAndQueryMustBothHold(t *testing.T) {
	matches, exact := Match([]string{"spicy"}, "coconut")

	require.True(t, exact)
	assert.Equal(t, []string{"Octopus Curry"}, dishNames(matches))
}

func TestMatchFallsBackToPopularDishes(t *testing.T) {
	matches, exact := Match([]string{"seafood"}, "chocolate")

	assert.False(t, exact)
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"Dholl Puri", "Fish Vindaye", "Tropical Fruit Salad"}, dishNames(matches))
}
