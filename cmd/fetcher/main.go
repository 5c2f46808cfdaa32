package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"lottery-history/internal/config"
	"lottery-history/internal/history"
	"lottery-history/internal/logger"
	"lottery-history/internal/models"
	"lottery-history/internal/scraper"
)

func main() {
	_ = godotenv.Load()
	log := logger.New("fetcher")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	fetcher := scraper.NewFetcher(cfg.Fetcher.Timeout, cfg.Fetcher.Cutoff)

	// One game at a time; a failed fetch leaves that game's list empty and
	// the run still writes the snapshot.
	powerball := fetchGame(ctx, log, fetcher, "powerball", cfg.Fetcher.PowerballURL)
	megaMillions := fetchGame(ctx, log, fetcher, "megaMillions", cfg.Fetcher.MegaMillionsURL)

	hist := &models.History{
		Timestamp:    time.Now().UTC().Truncate(time.Second).Format(time.RFC3339),
		Powerball:    powerball,
		MegaMillions: megaMillions,
	}

	store := history.NewFileStore(cfg.History.Path)
	if err := store.Save(hist); err != nil {
		log.Fatal().Err(err).Str("path", cfg.History.Path).Msg("write history snapshot")
	}

	log.Info().
		Str("path", cfg.History.Path).
		Int("powerball", len(powerball)).
		Int("megaMillions", len(megaMillions)).
		Str("cutoff", cfg.Fetcher.CutoffDate).
		Msg("wrote history snapshot")
}

// fetchGame degrades any fetch or parse failure to an empty draw list so the
// run still writes a snapshot for the other game.
func fetchGame(ctx context.Context, log zerolog.Logger, fetcher *scraper.Fetcher, game, url string) []models.Draw {
	draws, err := fetcher.FetchDraws(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("game", game).Str("url", url).Msg("fetch failed, recording empty result")
		return []models.Draw{}
	}
	if draws == nil {
		draws = []models.Draw{}
	}
	return draws
}
