// Package engine is the synchronous façade the UI or a tournament harness
// drives: it owns a board, validates and applies moves, and dispatches AI
// move requests to each player's configured strategy.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ODawson-Git/quoridor/game"
	"github.com/ODawson-Git/quoridor/strategy"
)

type playerConfig struct {
	strategy string
	opening  string
}

// Engine wraps one game. It is not safe for concurrent use; hosts that need
// parallel games create independent engines.
type Engine struct {
	size  int
	walls int

	board      *game.Board
	strategies [2]*strategy.Strategy
	configs    [2]playerConfig

	seed   uint64
	seeded bool
}

// Option configures an engine at construction.
type Option func(*Engine)

// WithSeed makes every stochastic strategy owned by this engine
// deterministic.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.seeded = true
	}
}

// New creates an engine with a fresh starting position.
func New(size, walls int, options ...Option) *Engine {
	e := &Engine{size: size, walls: walls, board: game.NewBoard(size, walls)}
	for _, option := range options {
		option(e)
	}
	return e
}

// Reset returns the engine to the initial position and clears the history.
// Configured strategies are rebuilt so their opening scripts restart.
func (e *Engine) Reset() {
	e.board = game.NewBoard(e.size, e.walls)
	for i, cfg := range e.configs {
		if cfg.strategy == "" {
			continue
		}
		s, err := e.buildStrategy(game.Player(i+1), cfg)
		if err != nil {
			// The config was validated when it was set.
			panic(fmt.Sprintf("rebuilding strategy %q: %v", cfg.strategy, err))
		}
		e.strategies[i] = s
	}
}

// SetStrategy configures a player's move policy and scripted opening,
// returning false for an unknown player, strategy or opening name.
func (e *Engine) SetStrategy(player int, strategyName, openingName string) bool {
	if player != 1 && player != 2 {
		return false
	}
	cfg := playerConfig{strategy: strategyName, opening: openingName}
	s, err := e.buildStrategy(game.Player(player), cfg)
	if err != nil {
		log.Debug().Err(err).Int("player", player).Msg("strategy rejected")
		return false
	}
	e.strategies[player-1] = s
	e.configs[player-1] = cfg
	return true
}

func (e *Engine) buildStrategy(p game.Player, cfg playerConfig) (*strategy.Strategy, error) {
	var options []strategy.Option
	if e.seeded {
		options = append(options, strategy.WithSeed(e.seed+uint64(p)))
	}
	return strategy.New(cfg.strategy, cfg.opening, p, options...)
}

// LegalPawnMoves lists the active player's pawn destinations.
func (e *Engine) LegalPawnMoves() []string {
	return e.board.LegalPawnMoves(e.board.ActivePlayer())
}

// LegalWalls lists the active player's wall placements.
func (e *Engine) LegalWalls() []string {
	return e.board.LegalWalls(e.board.ActivePlayer())
}

// MakeMove validates and applies an algebraic move for the active player.
func (e *Engine) MakeMove(s string) bool {
	ok := e.board.ApplyMove(s)
	if !ok {
		log.Debug().Str("move", s).Msg("move rejected")
	}
	return ok
}

// CheckWin reports whether s is a legal pawn move onto the active player's
// goal row, without mutating anything.
func (e *Engine) CheckWin(s string) bool {
	return e.board.CheckWin(s)
}

// ActivePlayer returns 1 or 2.
func (e *Engine) ActivePlayer() int {
	return int(e.board.ActivePlayer())
}

// AIMove asks the active player's configured strategy for a move. Applying
// the result is the caller's job (via MakeMove). Requesting a move for a
// human-controlled or unconfigured player is a caller error.
func (e *Engine) AIMove() (string, error) {
	p := e.board.ActivePlayer()
	s := e.strategies[p-1]
	if s == nil {
		return "", fmt.Errorf("player %d has no strategy configured", int(p))
	}
	move, err := s.ChooseMove(e.board)
	if err != nil {
		return "", err
	}
	log.Debug().Str("strategy", s.Name()).Str("move", move).Int("player", int(p)).Msg("ai move")
	return move, nil
}

// Board exposes the underlying position read-only for analysis callers.
func (e *Engine) Board() *game.Board {
	return e.board
}

// Snapshot is a structured view of the current game state.
type Snapshot struct {
	Player1         string
	Player2         string
	HorizontalWalls []string
	VerticalWalls   []string
	Player1Walls    int
	Player2Walls    int
	ActivePlayer    int
	Terminal        bool
	Winner          int
}

// GameState returns a snapshot of pawns, walls, inventories and the
// terminal flag.
func (e *Engine) GameState() Snapshot {
	b := e.board
	return Snapshot{
		Player1:         game.ToAlgebraic(b.Size, b.Pawn(game.Player1)),
		Player2:         game.ToAlgebraic(b.Size, b.Pawn(game.Player2)),
		HorizontalWalls: b.HorizontalWalls(),
		VerticalWalls:   b.VerticalWalls(),
		Player1Walls:    b.WallsLeft(game.Player1),
		Player2Walls:    b.WallsLeft(game.Player2),
		ActivePlayer:    int(b.ActivePlayer()),
		Terminal:        b.Terminal(),
		Winner:          int(b.Winner()),
	}
}
