package digest_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsroom/digest"
	"newsroom/models"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fakeSender struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) Send(ctx context.Context, to, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func oid(n int) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(fmt.Sprintf("%024d", n))
	if err != nil {
		panic(err)
	}
	return id
}

func upcomingEvent(n int) models.Post {
	eventAt := now.AddDate(0, 0, n)
	return models.Post{
		ID:        oid(n),
		Title:     fmt.Sprintf("Event %d", n),
		Content:   "content",
		CreatedAt: now.AddDate(0, 0, -1),
		EventDate: &eventAt,
	}
}

func subscriber(id, email string) models.UserProfile {
	return models.UserProfile{ID: id, Email: email, WeeklyTop5: true}
}

func TestRunSendsToSubscribedUsersOnly(t *testing.T) {
	sender := &fakeSender{}
	d := digest.NewDispatcher(sender, digest.Options{SiteBaseURL: "https://example.edu"})

	users := []models.UserProfile{
		subscriber("u1", "a@scu.edu"),
		{ID: "u2", Email: "b@scu.edu", WeeklyTop5: false},
		subscriber("u3", ""), // no usable email
	}
	posts := []models.Post{upcomingEvent(1)}

	report := d.Run(context.Background(), users, posts, now)

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, []string{"a@scu.edu"}, sender.sent)
}

// One failing address must not stop the other sends.
func TestRunAggregatesFailuresWithoutAborting(t *testing.T) {
	sendErr := errors.New("address rejected")
	sender := &fakeSender{failFor: map[string]error{"bad@scu.edu": sendErr}}
	d := digest.NewDispatcher(sender, digest.Options{SiteBaseURL: "https://example.edu", Concurrency: 2})

	users := []models.UserProfile{
		subscriber("u1", "a@scu.edu"),
		subscriber("u2", "bad@scu.edu"),
		subscriber("u3", "c@scu.edu"),
	}
	posts := []models.Post{upcomingEvent(1), upcomingEvent(2)}

	report := d.Run(context.Background(), users, posts, now)

	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	if assert.Len(t, report.Errors, 1) {
		assert.ErrorIs(t, report.Errors[0], sendErr)
	}
	assert.ElementsMatch(t, []string{"a@scu.edu", "c@scu.edu"}, sender.sent)
}

// A subscriber with nothing to put in the email is skipped, not failed.
func TestRunSkipsUsersWithEmptySelection(t *testing.T) {
	sender := &fakeSender{}
	d := digest.NewDispatcher(sender, digest.Options{SiteBaseURL: "https://example.edu"})

	users := []models.UserProfile{subscriber("u1", "a@scu.edu")}
	posts := []models.Post{
		{ID: oid(1), Title: "no event date", Content: "content", CreatedAt: now},
	}

	report := d.Run(context.Background(), users, posts, now)

	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, sender.sent)
}

func TestRunBoundedConcurrency(t *testing.T) {
	sender := &fakeSender{}
	d := digest.NewDispatcher(sender, digest.Options{SiteBaseURL: "https://example.edu", Concurrency: 1})

	users := make([]models.UserProfile, 0, 10)
	for i := 0; i < 10; i++ {
		users = append(users, subscriber(fmt.Sprintf("u%d", i), fmt.Sprintf("user%d@scu.edu", i)))
	}
	posts := []models.Post{upcomingEvent(1)}

	report := d.Run(context.Background(), users, posts, now)

	assert.Equal(t, 10, report.Sent)
	assert.Len(t, sender.sent, 10)
}
