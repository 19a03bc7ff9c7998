// Command weeklytop5 is the cron-invoked batch that sends the weekly
// digest email to every subscribed user. A run reads one snapshot of
// users and posts, fans out the sends, and exits; re-running after a
// crash just re-sends the week's digest, which is harmless.
package main

import (
	"context"
	"os"
	"time"

	"newsroom/config"
	"newsroom/db"
	"newsroom/digest"
	"newsroom/logger"
	"newsroom/mailer"
	"newsroom/repositories"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("mongo init failed: %v", err)
		os.Exit(1)
	}

	sender, err := mailerFromConfig(cfg.Digest)
	if err != nil {
		logger.Log.Errorf("mailer init failed: %v", err)
		os.Exit(1)
	}

	// Snapshot reads. Either one failing is fatal: no per-user work can
	// proceed without them.
	users, err := repositories.NewUserRepository(db.Database()).ListSubscribed(ctx)
	if err != nil {
		logger.Log.Errorf("list subscribed users failed: %v", err)
		os.Exit(1)
	}
	posts, err := repositories.NewPostRepository(db.Database()).ListAll(ctx)
	if err != nil {
		logger.Log.Errorf("list posts failed: %v", err)
		os.Exit(1)
	}

	d := digest.NewDispatcher(sender, digest.Options{
		Subject:     cfg.Digest.Subject,
		SiteBaseURL: cfg.SiteBaseURL,
		Concurrency: cfg.Digest.Concurrency,
		Log:         logger.Log,
	})

	report := d.Run(ctx, users, posts, time.Now())

	logger.InfoWithFields("digest run finished", logger.Fields{
		"subscribed": len(users),
		"sent":       report.Sent,
		"failed":     report.Failed,
	})
	for _, e := range report.Errors {
		logger.Log.Errorf("digest: %v", e)
	}
}

func mailerFromConfig(cfg config.DigestConfig) (mailer.EmailSender, error) {
	return mailer.NewSendGridFromEnv(cfg.FromName, cfg.FromEmail)
}
