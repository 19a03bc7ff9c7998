// Package calendar exports a post's event as an ICS document or a Google
// Calendar prefill link, for the "add to calendar" button next to starred
// posts.
package calendar

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsroom/models"
)

// ErrNotEvent is returned for posts without an event date.
var ErrNotEvent = errors.New("post has no event date")

// DefaultEventDuration is assumed when a post has no explicit end time.
const DefaultEventDuration = time.Hour

const icsTimeLayout = "20060102T150405Z"

// EventWindow returns the event start and end. A missing end, or an end
// that is not after the start, falls back to start plus the default
// duration; store data is not trusted to be well-formed here.
func EventWindow(post *models.Post) (time.Time, time.Time, error) {
	if !post.IsEvent() {
		return time.Time{}, time.Time{}, ErrNotEvent
	}
	start := *post.EventDate
	end := start.Add(DefaultEventDuration)
	if post.EventEndDate != nil && post.EventEndDate.After(start) {
		end = *post.EventEndDate
	}
	return start, end, nil
}

// ICS renders a single-event VCALENDAR document for download.
func ICS(post *models.Post) (string, error) {
	start, end, err := EventWindow(post)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//SCU Newsroom//EN\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s\r\n", uuid.NewString())
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", time.Now().UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeText(post.Title))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeText(post.Content))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", start.UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "DTEND:%s\r\n", end.UTC().Format(icsTimeLayout))
	if post.Location != "" {
		fmt.Fprintf(&b, "LOCATION:%s\r\n", escapeText(post.Location))
	}
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.String(), nil
}

// GoogleCalendarURL builds the render?action=TEMPLATE link the web client
// opens in a new tab.
func GoogleCalendarURL(post *models.Post) (string, error) {
	start, end, err := EventWindow(post)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", post.Title)
	q.Set("dates", start.UTC().Format(icsTimeLayout)+"/"+end.UTC().Format(icsTimeLayout))
	q.Set("details", post.Content)
	if post.Location != "" {
		q.Set("location", post.Location)
	}
	return "https://calendar.google.com/calendar/render?" + q.Encode(), nil
}

// escapeText applies RFC 5545 text escaping.
func escapeText(text string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
		",", "\\,",
		";", "\\;",
	)
	return r.Replace(text)
}
