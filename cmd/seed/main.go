package main

import (
	"context"
	"flag"
	"todoapp/config"
	"todoapp/di"
	"todoapp/shared/logger"
	"todoapp/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	clearFirst := flag.Bool("clear", false, "delete every existing todo before seeding")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	seeder := di.InitializeSeeder()

	summary, err := seeder.Run(context.Background(), *clearFirst, timezone.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed example todos")
	}

	log.Info().Int("created", summary.Created).Msg("Example todos created")
	log.Info().
		Int("total", summary.Counts.Total).
		Int("resolved", summary.Counts.Resolved).
		Int("pending", summary.Counts.Pending).
		Int("overdue", summary.Counts.Overdue).
		Msg("Todo summary")
}
