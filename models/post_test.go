package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsroom/models"
)

func TestValidateRequiresTitleAndContent(t *testing.T) {
	ok := models.Post{Title: "Hello", Content: "World"}
	assert.NoError(t, ok.Validate())

	missingTitle := models.Post{Title: "", Content: "Content"}
	assert.ErrorIs(t, missingTitle.Validate(), models.ErrTitleRequired)

	missingContent := models.Post{Title: "Title", Content: ""}
	assert.ErrorIs(t, missingContent.Validate(), models.ErrContentRequired)

	blankTitle := models.Post{Title: "   ", Content: "Content"}
	assert.ErrorIs(t, blankTitle.Validate(), models.ErrTitleRequired)

	blankContent := models.Post{Title: "Valid", Content: "  "}
	assert.ErrorIs(t, blankContent.Validate(), models.ErrContentRequired)
}

func TestValidateEventWindow(t *testing.T) {
	start := time.Date(2026, 10, 5, 17, 0, 0, 0, time.UTC)
	endBefore := start.Add(-time.Hour)
	endAfter := start.Add(time.Hour)

	bad := models.Post{Title: "t", Content: "c", EventDate: &start, EventEndDate: &endBefore}
	assert.ErrorIs(t, bad.Validate(), models.ErrEventWindow)

	sameInstant := models.Post{Title: "t", Content: "c", EventDate: &start, EventEndDate: &start}
	assert.ErrorIs(t, sameInstant.Validate(), models.ErrEventWindow)

	good := models.Post{Title: "t", Content: "c", EventDate: &start, EventEndDate: &endAfter}
	assert.NoError(t, good.Validate())

	// end date without a start date is left to the admin screens
	noStart := models.Post{Title: "t", Content: "c", EventEndDate: &endAfter}
	assert.NoError(t, noStart.Validate())
}
