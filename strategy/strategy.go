package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"golang.org/x/exp/rand"

	"github.com/ODawson-Git/quoridor/game"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrUnknownOpening  = errors.New("unknown opening")
	// ErrHumanPlayer is returned when an engine move is requested for a
	// human-controlled player.
	ErrHumanPlayer = errors.New("human player has no engine move")
)

// Kind enumerates the built-in strategy families.
type Kind int

const (
	KindHuman Kind = iota
	KindRandom
	KindShortestPath
	KindDefensive
	KindBalanced
	KindAdaptive
	KindMirror
	KindMinimax
	KindMCTS
	KindAnnealing
)

// Strategy is a tagged move-selection policy. The tag picks the family and
// the fields carry that family's parameters; an optional scripted opening is
// consulted before the policy itself.
type Strategy struct {
	kind   Kind
	name   string
	player game.Player

	opening    []string
	openingIdx int
	abandoned  bool

	depth       int           // minimax
	episodes    int           // mcts
	duration    time.Duration // mcts
	temperature float64       // annealing

	rng *rand.Rand
}

// Option configures a strategy at construction.
type Option func(*Strategy)

// WithSeed pins the random source so every stochastic choice is
// reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Strategy) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// New builds a strategy from its wire name ("Minimax2", "MCTS5k", ...) and
// an opening name from the book, for the given player.
func New(name, openingName string, player game.Player, options ...Option) (*Strategy, error) {
	s := &Strategy{name: name, player: player}
	if err := s.parseName(name); err != nil {
		return nil, err
	}
	opening, err := OpeningMoves(openingName, player)
	if err != nil {
		return nil, err
	}
	s.opening = opening
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s, nil
}

// Name returns the wire name the strategy was built from.
func (s *Strategy) Name() string { return s.name }

// Kind returns the strategy family tag.
func (s *Strategy) Kind() Kind { return s.kind }

func (s *Strategy) parseName(name string) error {
	switch name {
	case "Human":
		s.kind = KindHuman
	case "Random":
		s.kind = KindRandom
	case "ShortestPath":
		s.kind = KindShortestPath
	case "Defensive":
		s.kind = KindDefensive
	case "Balanced":
		s.kind = KindBalanced
	case "Adaptive":
		s.kind = KindAdaptive
	case "Mirror":
		s.kind = KindMirror
	default:
		return s.parseParameterised(name)
	}
	return nil
}

func (s *Strategy) parseParameterised(name string) error {
	switch {
	case strings.HasPrefix(name, "Minimax"):
		depth, err := strconv.Atoi(name[len("Minimax"):])
		if err != nil || depth < 1 {
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
		s.kind = KindMinimax
		s.depth = depth
	case strings.HasPrefix(name, "MCTS"):
		rest := name[len("MCTS"):]
		switch {
		case strings.HasSuffix(rest, "sec"):
			secs, err := strconv.Atoi(strings.TrimSuffix(rest, "sec"))
			if err != nil || secs < 1 {
				return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
			}
			s.kind = KindMCTS
			s.duration = time.Duration(secs) * time.Second
		case strings.HasSuffix(rest, "k"):
			thousands, err := strconv.Atoi(strings.TrimSuffix(rest, "k"))
			if err != nil || thousands < 1 {
				return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
			}
			s.kind = KindMCTS
			s.episodes = thousands * 1000
		default:
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
	case strings.HasPrefix(name, "SimulatedAnnealing"):
		temperature, err := strconv.ParseFloat(name[len("SimulatedAnnealing"):], 64)
		if err != nil || temperature <= 0 {
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
		s.kind = KindAnnealing
		s.temperature = temperature
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return nil
}

// ChooseMove returns the strategy's move for the current position. While any
// legal move exists the result is never empty.
func (s *Strategy) ChooseMove(b *game.Board) (string, error) {
	if s.kind == KindHuman {
		return "", ErrHumanPlayer
	}
	if move, ok := s.tryOpeningMove(b); ok {
		return move, nil
	}
	move := s.pick(b)
	if move == "" {
		legal := b.LegalMoves(b.ActivePlayer())
		if len(legal) == 0 {
			return "", fmt.Errorf("no legal moves for %s", b.ActivePlayer())
		}
		log.Warn().Str("strategy", s.name).Msg("policy produced no move, falling back to the first legal one")
		move = legal[0]
	}
	return move, nil
}

// tryOpeningMove plays the next scripted move while the script remains
// viable. The first scripted move that is illegal in the live game abandons
// the rest of the script.
func (s *Strategy) tryOpeningMove(b *game.Board) (string, bool) {
	if s.abandoned || s.openingIdx >= len(s.opening) {
		return "", false
	}
	move := s.opening[s.openingIdx]
	if !b.Legal(move) {
		log.Debug().Str("strategy", s.name).Stringer("player", s.player).Str("move", move).Msg("opening move is not legal, abandoning the script")
		s.abandoned = true
		return "", false
	}
	s.openingIdx++
	return move, true
}
