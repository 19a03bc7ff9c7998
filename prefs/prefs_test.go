package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom/prefs"
)

var allowed = []string{"Arts & Sciences", "Business", "Engineering", "Athletics", "Student Life"}

func TestValidateRequiresThreePicks(t *testing.T) {
	assert.True(t, prefs.Validate([]string{"Arts & Sciences", "Business", "Engineering"}, allowed))
	assert.False(t, prefs.Validate([]string{"Business"}, allowed))
	assert.False(t, prefs.Validate([]string{}, allowed))
	assert.False(t, prefs.Validate(nil, allowed))
}

func TestValidateRejectsUnknownCategories(t *testing.T) {
	assert.False(t, prefs.Validate([]string{"Business", "Engineering", "Underwater Basket Weaving"}, allowed))
}

func TestNormalizeTrimsAndDeduplicates(t *testing.T) {
	got := prefs.Normalize([]string{" Business ", "Business", "", "  ", "Engineering"})
	assert.Equal(t, []string{"Business", "Engineering"}, got)
}

func TestNormalizePreservesOrder(t *testing.T) {
	got := prefs.Normalize([]string{"Engineering", "Business", "Engineering"})
	assert.Equal(t, []string{"Engineering", "Business"}, got)
}
