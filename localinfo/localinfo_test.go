package localinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationsByType(t *testing.T) {
	all := LocationsByType("")
	assert.Len(t, all, 4)

	hospitals := LocationsByType("hospital")
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Victoria Hospital", hospitals[0].Name)

	assert.Empty(t, LocationsByType("embassy"))
}

func TestReferenceDataComplete(t *testing.T) {
	assert.Len(t, phrases, 8)
	assert.Len(t, etiquetteTips, 6)
	assert.Len(t, emergencyContacts, 6)

	for _, contact := range emergencyContacts {
		assert.NotEmpty(t, contact.Number, contact.Service)
	}
}
