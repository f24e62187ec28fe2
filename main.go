package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ODawson-Git/quoridor/tournament"
)

func main() {
	// QUORIDOR_DEBUG is the only recognised configuration knob; anything
	// else in the environment is ignored.
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("QUORIDOR_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	strategies := []string{
		"Adaptive",
		"Minimax1",
		"Minimax2",
		"SimulatedAnnealing0.5",
		"SimulatedAnnealing1.0",
		"SimulatedAnnealing1.5",
		"SimulatedAnnealing2.0",
	}
	openings := []string{
		"No Opening",
		"Sidewall Opening",
		"Standard Opening",
	}

	tour := tournament.New(9, 10, 30)
	log.Info().Int("strategies", len(strategies)).Int("openings", len(openings)).Msg("starting tournament")
	if err := tour.RunRoundRobin(strategies, openings); err != nil {
		log.Fatal().Err(err).Msg("tournament aborted")
	}

	writer, err := tournament.NewWriter("results")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create results directory")
	}
	if err := writer.WriteMatchResults(tour.Results()); err != nil {
		log.Fatal().Err(err).Msg("cannot write match results")
	}
	if err := writer.WriteGameRecords(tour.Records()); err != nil {
		log.Fatal().Err(err).Msg("cannot write game records")
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("tournament results saved")
}
