package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"newsroom/api/auth"
	"newsroom/api/router"
	"newsroom/config"
	"newsroom/db"
	"newsroom/logger"
)

// @title           Newsroom API
// @version         1.0
// @description     API for the university newsroom: posts, preferences, favorites and the For-You feed
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(jwtManager)

	// The web client runs on a different origin, so the engine is wrapped
	// with CORS before serving.
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{config.GetConfig().SiteBaseURL, "http://localhost:3000"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
