package searcher

import (
	"math"
	"sort"

	"github.com/ODawson-Git/quoridor/game"
)

// winScore dominates any positional evaluation; the remaining depth is added
// so faster wins (and slower losses) score better.
const winScore = 1 << 20

// MinimaxOption configures a Minimax search.
type MinimaxOption func(*Minimax)

// WithEvaluate overrides the leaf evaluation.
func WithEvaluate(evaluate game.Evaluate) MinimaxOption {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// Minimax is a fixed-depth negamax search with alpha-beta pruning. Depth
// counts plies.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
}

func NewMinimax(depth int, options ...MinimaxOption) *Minimax {
	if depth < 1 {
		panic("minimax depth must be at least 1")
	}
	m := &Minimax{depth: depth, evaluate: game.EvaluateLeaf}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for the active player.
func (m *Minimax) FindMove(b *game.Board) (string, bool) {
	moves := orderedMoves(b)
	if len(moves) == 0 {
		return "", false
	}
	best := moves[0]
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, move := range moves {
		child := b.Clone()
		child.ApplyMove(move)
		value := -m.search(child, m.depth-1, -beta, -alpha)
		if value > alpha {
			alpha = value
			best = move
		}
	}
	return best, true
}

// search scores the position from the active player's perspective.
func (m *Minimax) search(b *game.Board, depth int, alpha, beta float64) float64 {
	if b.Terminal() {
		// The previous mover just won.
		return -float64(winScore + depth)
	}
	if depth == 0 {
		return m.evaluate(b, b.ActivePlayer())
	}
	moves := orderedMoves(b)
	if len(moves) == 0 {
		return m.evaluate(b, b.ActivePlayer())
	}
	value := math.Inf(-1)
	for _, move := range moves {
		child := b.Clone()
		child.ApplyMove(move)
		v := -m.search(child, depth-1, -beta, -alpha)
		if v > value {
			value = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}
	return value
}

// orderedMoves lists pawn moves first, then wall moves sorted by how much
// they improve the active player's path-length difference. Good ordering is
// what makes the alpha-beta cutoffs bite.
func orderedMoves(b *game.Board) []string {
	p := b.ActivePlayer()
	moves := b.LegalPawnMoves(p)
	walls := b.LegalWalls(p)
	if len(walls) == 0 {
		return moves
	}

	me0, opp0 := b.Distance(p), b.Distance(p.Opponent())
	base := opp0 - me0
	type scoredWall struct {
		move string
		gain int
	}
	scored := make([]scoredWall, 0, len(walls))
	for _, w := range walls {
		wm, err := game.ParseMove(b.Size, w)
		if err != nil {
			continue
		}
		d1, d2 := b.DistancesAfterWall(wm)
		me, opp := d1, d2
		if p == game.Player2 {
			me, opp = d2, d1
		}
		scored = append(scored, scoredWall{move: w, gain: (opp - me) - base})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].gain > scored[j].gain })
	for _, sw := range scored {
		moves = append(moves, sw.move)
	}
	return moves
}
