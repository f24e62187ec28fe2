package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/ODawson-Git/quoridor/game"
)

// Option configures an MCTS search.
type Option func(*MCTS)

// MoveMetrics summarises one search call.
type MoveMetrics struct {
	Duration     time.Duration
	Episodes     int
	FullPlayouts int // playouts that reached a real win rather than the cap
}

// MCTS runs UCT tree search with shortest-path playouts. The budget is either
// a fixed number of episodes or a wall-clock duration; the clock is checked
// at simulation boundaries only, never inside a playout.
type MCTS struct {
	episodes int
	duration time.Duration
	cap      int // playout ply cap; defaults to 2*size^2
	rng      *rand.Rand
	metrics  MoveMetrics
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithPlayoutCap(plies int) Option {
	return func(m *MCTS) {
		if plies > 0 {
			m.cap = plies
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("must specify search episodes or duration")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindMove runs the configured budget of simulations from the given position
// and returns the most-visited root move. The tree is local to the call and
// released when it returns.
func (m *MCTS) FindMove(b *game.Board) (string, bool) {
	root := newDecision(nil, "", game.NoPlayer, b)
	limit := m.cap
	if limit <= 0 {
		limit = 2 * b.Size * b.Size
	}

	m.metrics = MoveMetrics{}
	start := time.Now()
	if m.episodes > 0 {
		for i := 0; i < m.episodes; i++ {
			m.simulate(root, b, limit)
		}
	} else {
		for time.Since(start) < m.duration {
			m.simulate(root, b, limit)
		}
	}
	m.metrics.Duration = time.Since(start)
	return root.bestMove()
}

// Metrics reports the counters of the most recent FindMove call.
func (m *MCTS) Metrics() MoveMetrics { return m.metrics }

func (m *MCTS) simulate(root *decision, b *game.Board, limit int) {
	state := b.Clone()
	node := root
	child, expanded := node.selectOrExpand(state)
	for child != node && !expanded {
		node = child
		child, expanded = node.selectOrExpand(state)
	}
	winner := m.rollout(state, limit)
	child.backup(winner)
	m.metrics.Episodes++
}

// rollout plays both sides with the randomised shortest-path policy until a
// pawn reaches its goal or the ply cap is hit; a capped playout resolves by
// comparing the two remaining path lengths.
func (m *MCTS) rollout(b *game.Board, limit int) game.Player {
	for ply := 0; ply < limit; ply++ {
		if b.Terminal() {
			m.metrics.FullPlayouts++
			return b.Winner()
		}
		moves := b.ShortestAdvances(b.ActivePlayer())
		if len(moves) == 0 {
			return game.NoPlayer
		}
		b.ApplyMove(moves[m.rng.Intn(len(moves))])
	}
	if b.Terminal() {
		m.metrics.FullPlayouts++
		return b.Winner()
	}
	p := b.ActivePlayer()
	me, opp := b.Distance(p), b.Distance(p.Opponent())
	switch {
	case me < opp:
		return p
	case opp < me:
		return p.Opponent()
	}
	return game.NoPlayer
}
