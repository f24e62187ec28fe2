// Package tournament plays round-robin matches between named strategies and
// records the outcomes.
package tournament

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ODawson-Git/quoridor/engine"
	"github.com/ODawson-Git/quoridor/game"
)

// Tournament runs matches between wire-named strategies on identical boards.
type Tournament struct {
	Size          int
	Walls         int
	GamesPerMatch int
	// MaxMoves caps a game before declaring a draw.
	MaxMoves int
	// Seed pins every stochastic strategy; each game derives its own
	// sub-seed so repeated games within a match still differ.
	Seed uint64

	results []MatchResult
	records []GameRecord
}

// New creates a tournament on size x size boards with the given wall
// inventory per player.
func New(size, walls, gamesPerMatch int) *Tournament {
	return &Tournament{
		Size:          size,
		Walls:         walls,
		GamesPerMatch: gamesPerMatch,
		MaxMoves:      150,
		Seed:          1,
	}
}

// Results returns the accumulated match summaries.
func (t *Tournament) Results() []MatchResult { return t.results }

// Records returns the accumulated per-game records.
func (t *Tournament) Records() []GameRecord { return t.records }

// RunMatch plays the configured number of games between two strategies under
// one opening, alternating which strategy moves first.
func (t *Tournament) RunMatch(strategy1, strategy2, opening string) (MatchResult, error) {
	result := MatchResult{
		Strategy1: strategy1,
		Strategy2: strategy2,
		Opening:   opening,
		Games:     t.GamesPerMatch,
	}

	for i := 0; i < t.GamesPerMatch; i++ {
		first, second := strategy1, strategy2
		if i%2 == 1 {
			first, second = second, first
		}

		record, err := t.playGame(first, second, opening, t.Seed+uint64(i)*2654435761)
		if err != nil {
			return MatchResult{}, err
		}
		t.records = append(t.records, record)

		switch {
		case record.Winner == "":
			result.Draws++
		case (record.Winner == game.Player1.String()) == (first == strategy1):
			result.Wins1++
		default:
			result.Wins2++
		}
	}

	t.results = append(t.results, result)
	return result, nil
}

// playGame runs one game to its end or the move cap. first plays as player 1.
func (t *Tournament) playGame(first, second, opening string, seed uint64) (GameRecord, error) {
	e := engine.New(t.Size, t.Walls, engine.WithSeed(seed))
	if !e.SetStrategy(1, first, opening) {
		return GameRecord{}, fmt.Errorf("bad strategy or opening: %q / %q", first, opening)
	}
	if !e.SetStrategy(2, second, opening) {
		return GameRecord{}, fmt.Errorf("bad strategy or opening: %q / %q", second, opening)
	}

	record := GameRecord{
		ID:        uuid.New().String(),
		Strategy1: first,
		Strategy2: second,
		Opening:   opening,
	}
	start := time.Now()

	moves := 0
	for moves < t.MaxMoves && !e.GameState().Terminal {
		move, err := e.AIMove()
		if err != nil {
			return GameRecord{}, fmt.Errorf("move %d: %w", moves, err)
		}
		if !e.MakeMove(move) {
			return GameRecord{}, fmt.Errorf("move %d: strategy produced the illegal move %q", moves, move)
		}
		moves++
	}
	if snap := e.GameState(); snap.Terminal {
		record.Winner = game.Player(snap.Winner).String()
	}

	record.Moves = moves
	record.Duration = time.Since(start)
	log.Debug().Str("winner", record.Winner).Int("moves", moves).Msg("game over")
	return record, nil
}

// RunRoundRobin plays every distinct strategy pairing under every opening.
func (t *Tournament) RunRoundRobin(strategies, openings []string) error {
	for _, opening := range openings {
		for i := 0; i < len(strategies); i++ {
			for j := i + 1; j < len(strategies); j++ {
				log.Info().
					Str("opening", opening).
					Str("strategy1", strategies[i]).
					Str("strategy2", strategies[j]).
					Msg("running match")
				if _, err := t.RunMatch(strategies[i], strategies[j], opening); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
