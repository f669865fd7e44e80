// Package main is the entry point for the portfolio-service application.
//
// @title           Portfolio Service API
// @version         1.0.0
// @description     Multilingual portfolio content API with server rendered pages.
//
//	Content is stored once per entity and translated per language. Writes require an admin bearer token.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/portfolio-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token from /get-token/, sent as: Bearer <token>
//
// @securityDefinitions.basic  BasicAuth
//
// @tag.name        Content
// @tag.description Portfolio entities and their translations
//
// @tag.name        Auth
// @tag.description Admin token issuance
//
// @tag.name        Audit
// @tag.description Audit trail of admin writes and token requests
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/portfolio-service/docs" // swagger docs

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/app"
	"github.com/guttosm/portfolio-service/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	ctx := context.Background()
	router, cleanup, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(router, cfg.Server)
	server.OnShutdown(cleanup)

	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
		os.Exit(1)
	}
}
