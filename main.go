package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"puzzlepack/internal/access"
	"puzzlepack/internal/catalog"
	"puzzlepack/internal/completion"
	"puzzlepack/internal/config"
	"puzzlepack/internal/daily"
	"puzzlepack/internal/httpserver"
	"puzzlepack/internal/kv"
	"puzzlepack/internal/scores"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	store, err := kv.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DBPath).Msg("sqlite unavailable, using in-memory store")
		store = kv.NewMemory()
	}

	set := catalog.LoadBundled()
	selector := daily.New(set, store, cfg.DailySalt)
	tracker := completion.NewTracker(store)
	ledger := scores.NewStore(store)
	pipeline := scores.NewPipeline(tracker, ledger)
	tiers := access.NewTierCache(store)

	srv := httpserver.New(cfg, selector, pipeline, ledger, tracker, tiers)
	log.Info().Str("port", cfg.Port).
		Int("decodeDays", set.Decode.Len()).
		Int("flashdanceDays", set.Flashdance.Len()).
		Int("anagramsDays", set.Anagrams.Len()).
		Msg("starting puzzlepack")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
