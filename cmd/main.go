// Package main is the entry point for the box-service application.
//
// @title           Box Service API
// @version         1.0.0
// @description     Recommends shipping box models for an order, either one model for the whole order or a mix of models limited by stock.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/box-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Recommendations
// @tag.description Single-model, mixed-model and diagnostic box recommendations
//
// @tag.name        Catalog
// @tag.description Box models and stock of a site
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/box-service/docs" // swagger docs

	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	runErr := server.Run(ctx)

	application.Close(context.Background())
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
