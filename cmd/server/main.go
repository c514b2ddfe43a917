package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Irina-Na/ai-stylist/config"
	httpDelivery "github.com/Irina-Na/ai-stylist/internal/delivery/http"
	"github.com/Irina-Na/ai-stylist/internal/infrastructure/cache"
	"github.com/Irina-Na/ai-stylist/internal/infrastructure/catalog"
	"github.com/Irina-Na/ai-stylist/internal/infrastructure/feedback"
	"github.com/Irina-Na/ai-stylist/internal/infrastructure/llm"
	"github.com/Irina-Na/ai-stylist/internal/infrastructure/runway"
	"github.com/Irina-Na/ai-stylist/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Matching.EnableDebugLogging || cfg.Server.Environment == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("model", cfg.LLM.Model).
		Msg("starting ai-stylist")

	// Catalog snapshot, loaded once per process lifetime
	store, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("failed to load catalog")
	}

	feedbackStore, err := feedback.Open(cfg.Feedback.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Feedback.Path).Msg("failed to open feedback store")
	}

	lookClient := llm.NewClient(llm.Config{
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		Model:      cfg.LLM.Model,
		MaxRetries: cfg.LLM.MaxRetries,
	})

	matcher := usecase.NewItemMatcher(usecase.MatcherConfig{
		StageFloor:         cfg.Matching.StageFloor,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})
	filter := usecase.NewLookFilter(matcher)

	lookService := usecase.NewLookService(
		cache.NewMemoryCache(),
		lookClient,
		store,
		filter,
		usecase.LookServiceConfig{CacheTTL: cfg.Cache.TTL},
	)

	sceneBuilder := runway.NewBuilder(
		runway.NewImageProcessor(cfg.Runway.ImageTimeout, cfg.Runway.ImageSize),
	)

	handler := httpDelivery.NewHandler(lookService, lookClient, sceneBuilder, feedbackStore)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Int("catalog_rows", store.Size()).Msg("server listening")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func init() {
	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.RFC3339
	})
	log.Logger = zerolog.New(cw).With().Timestamp().Logger()
}
