package calendar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsroom/calendar"
	"newsroom/models"
)

func eventPost(start time.Time, end *time.Time) models.Post {
	return models.Post{
		Title:        "Career Fair, Fall; Day 1",
		Content:      "Meet employers\nacross campus",
		Location:     "Leavey Center",
		EventDate:    &start,
		EventEndDate: end,
	}
}

func TestICSEscapesTextAndFormatsDates(t *testing.T) {
	start := time.Date(2026, 10, 5, 17, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	post := eventPost(start, &end)

	ics, err := calendar.ICS(&post)
	if err != nil {
		t.Fatal(err)
	}

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Career Fair\\, Fall\\; Day 1")
	assert.Contains(t, ics, "DESCRIPTION:Meet employers\\nacross campus")
	assert.Contains(t, ics, "DTSTART:20261005T170000Z")
	assert.Contains(t, ics, "DTEND:20261005T190000Z")
	assert.Contains(t, ics, "LOCATION:Leavey Center")
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
}

func TestEventWindowDefaultsToOneHour(t *testing.T) {
	start := time.Date(2026, 10, 5, 17, 0, 0, 0, time.UTC)
	post := eventPost(start, nil)

	gotStart, gotEnd, err := calendar.EventWindow(&post)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, start, gotStart)
	assert.Equal(t, start.Add(calendar.DefaultEventDuration), gotEnd)
}

// Malformed store data: an end before the start falls back to the default
// duration instead of producing a negative-length event.
func TestEventWindowIgnoresEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 10, 5, 17, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	post := eventPost(start, &end)

	_, gotEnd, err := calendar.EventWindow(&post)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, start.Add(calendar.DefaultEventDuration), gotEnd)
}

func TestICSRejectsNonEvents(t *testing.T) {
	post := models.Post{Title: "No date"}

	_, err := calendar.ICS(&post)
	assert.ErrorIs(t, err, calendar.ErrNotEvent)

	_, err = calendar.GoogleCalendarURL(&post)
	assert.ErrorIs(t, err, calendar.ErrNotEvent)
}

func TestGoogleCalendarURL(t *testing.T) {
	start := time.Date(2026, 10, 5, 17, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	post := eventPost(start, &end)

	u, err := calendar.GoogleCalendarURL(&post)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, strings.HasPrefix(u, "https://calendar.google.com/calendar/render?"))
	assert.Contains(t, u, "action=TEMPLATE")
	assert.Contains(t, u, "dates=20261005T170000Z%2F20261005T190000Z")
}
