package digest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newsroom/feed"
	"newsroom/logger"
	"newsroom/mailer"
	"newsroom/models"
)

// Report aggregates the outcome of one digest run. Skipped users
// (unsubscribed, no email, empty selection) appear in neither counter.
type Report struct {
	Sent   int
	Failed int
	Errors []error
}

// Options configures a Dispatcher.
type Options struct {
	Subject     string
	SiteBaseURL string

	// Concurrency caps in-flight sends; 0 or less means unlimited.
	Concurrency int

	Log logger.Logger
}

// Dispatcher fans the weekly digest out to subscribed users. Selection and
// rendering are pure; the only side effect is the EmailSender call, made
// once per user.
type Dispatcher struct {
	sender mailer.EmailSender
	opts   Options
}

func NewDispatcher(sender mailer.EmailSender, opts Options) *Dispatcher {
	if opts.Subject == "" {
		opts.Subject = "Your Weekly Top 5"
	}
	if opts.Log == nil {
		opts.Log = logger.Log
	}
	return &Dispatcher{sender: sender, opts: opts}
}

// Run selects, renders and sends one email per eligible user. Sends run
// concurrently up to the configured limit; one user's failure never stops
// the rest of the batch. The users and posts slices are read-only
// snapshots for the whole run.
func (d *Dispatcher) Run(ctx context.Context, users []models.UserProfile, posts []models.Post, now time.Time) Report {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report Report
	)

	var sem chan struct{}
	if d.opts.Concurrency > 0 {
		sem = make(chan struct{}, d.opts.Concurrency)
	}

	for i := range users {
		user := users[i]
		if !user.WeeklyTop5 || user.Email == "" {
			continue
		}

		selection := feed.SelectDigest(&user, posts, now)
		if len(selection) == 0 {
			d.opts.Log.Debugf("digest: no eligible posts for user %s, skipping", user.ID)
			continue
		}

		html, err := RenderHTML(selection, d.opts.SiteBaseURL)
		if err != nil {
			mu.Lock()
			report.Failed++
			report.Errors = append(report.Errors, fmt.Errorf("user %s: %w", user.ID, err))
			mu.Unlock()
			continue
		}

		wg.Add(1)
		if sem != nil {
			sem <- struct{}{}
		}
		go func() {
			defer wg.Done()
			if sem != nil {
				defer func() { <-sem }()
			}

			err := d.sender.Send(ctx, user.Email, d.opts.Subject, html)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Errorf("user %s: %w", user.ID, err))
				d.opts.Log.Errorf("digest: send to %s failed: %v", user.Email, err)
				return
			}
			report.Sent++
		}()
	}

	wg.Wait()
	return report
}
