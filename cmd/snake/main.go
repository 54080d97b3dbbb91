// Package main is the entry point for the terminal snake game.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/snake/internal/game"
	"github.com/samdwyer/snake/internal/logging"
	"github.com/samdwyer/snake/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		logrus.Debugf(".env file not loaded: %v", err)
	}

	closeLog, err := logging.Setup(os.Getenv("SNAKE_LOG_FILE"), os.Getenv("SNAKE_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logrus.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logrus.WithError(err).Warn("telemetry shutdown")
				}
			}()
		}
	}

	cfg := game.Config{
		Seed:      seedFromEnv(),
		SessionID: uuid.New().String(),
	}

	g, err := game.New(cfg)
	if errors.Is(err, game.ErrNoColor) {
		fmt.Println("ERROR: Terminal does not support color.")
		return 1
	}
	if err != nil {
		logrus.WithError(err).Error("failed to initialize game")
		fmt.Fprintf(os.Stderr, "failed to initialize game: %v\n", err)
		return 1
	}

	if _, err := g.Run(ctx); err != nil {
		logrus.WithError(err).Error("game error")
		return 1
	}
	return 0
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
// It reports whether tracing should be enabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_SNAKE_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("HONEYCOMB_SNAKE_DATASET")
	if dataset == "" {
		dataset = "snake"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// seedFromEnv reads SNAKE_SEED. Missing or invalid values give 0, a time-based seed.
func seedFromEnv() int64 {
	raw := os.Getenv("SNAKE_SEED")
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithField("SNAKE_SEED", raw).Warn("ignoring invalid seed")
		return 0
	}
	return seed
}
