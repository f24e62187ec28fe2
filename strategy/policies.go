package strategy

import (
	"math"

	"github.com/rs/zerolog/log"

	"golang.org/x/exp/rand"

	"github.com/ODawson-Git/quoridor/game"
	"github.com/ODawson-Git/quoridor/searcher"
)

const (
	// defensiveMargin is how close the opponent's race may get before the
	// defensive policy reaches for a wall.
	defensiveMargin = 2
	// earlyGamePlies is the adaptive policy's opening phase, counted in
	// total plies played.
	earlyGamePlies = 6
	// endgameRange is the goal distance at which the adaptive policy
	// switches to its endgame rules.
	endgameRange = 3
)

func (s *Strategy) pick(b *game.Board) string {
	switch s.kind {
	case KindRandom:
		return pickRandom(b, s.rng)
	case KindShortestPath:
		return pickShortestPath(b)
	case KindDefensive:
		return pickDefensive(b)
	case KindBalanced:
		return pickBalanced(b)
	case KindAdaptive:
		return pickAdaptive(b)
	case KindMirror:
		return pickMirror(b)
	case KindMinimax:
		move, _ := searcher.NewMinimax(s.depth).FindMove(b)
		return move
	case KindMCTS:
		options := []searcher.Option{searcher.WithRand(s.rng)}
		if s.episodes > 0 {
			options = append(options, searcher.WithEpisodes(s.episodes))
		} else {
			options = append(options, searcher.WithDuration(s.duration))
		}
		m := searcher.NewMCTS(options...)
		move, _ := m.FindMove(b)
		metrics := m.Metrics()
		log.Debug().
			Int("episodes", metrics.Episodes).
			Int("fullPlayouts", metrics.FullPlayouts).
			Dur("took", metrics.Duration).
			Msg("mcts search complete")
		return move
	case KindAnnealing:
		move, _ := searcher.NewAnnealer(s.temperature, searcher.WithAnnealerRand(s.rng)).FindMove(b)
		return move
	}
	return ""
}

func pickRandom(b *game.Board, rng *rand.Rand) string {
	moves := b.LegalMoves(b.ActivePlayer())
	if len(moves) == 0 {
		return ""
	}
	return moves[rng.Intn(len(moves))]
}

func pickShortestPath(b *game.Board) string {
	move, _ := game.BestAdvance(b, b.ActivePlayer())
	return move
}

// pickDefensive reaches for the most obstructive wall once the opponent's
// race gets too close, and walks the shortest path otherwise.
func pickDefensive(b *game.Board) string {
	p := b.ActivePlayer()
	me, opp := b.Distance(p), b.Distance(p.Opponent())
	if opp <= me+defensiveMargin && b.WallsLeft(p) > 0 {
		if wall := bestBlockingWall(b, p); wall != "" {
			return wall
		}
	}
	return pickShortestPath(b)
}

// bestBlockingWall returns the wall maximising the opponent's detour net of
// our own, or "" when no wall gains anything.
func bestBlockingWall(b *game.Board, p game.Player) string {
	me0, opp0 := b.Distance(p), b.Distance(p.Opponent())
	best := ""
	bestGain := 0
	for _, wall := range b.LegalWalls(p) {
		m, err := game.ParseMove(b.Size, wall)
		if err != nil {
			continue
		}
		d1, d2 := b.DistancesAfterWall(m)
		me, opp := d1, d2
		if p == game.Player2 {
			me, opp = d2, d1
		}
		if gain := (opp - opp0) - (me - me0); gain > bestGain {
			bestGain = gain
			best = wall
		}
	}
	return best
}

// pickBalanced maximises the balance score over every legal move, pawn and
// wall alike.
func pickBalanced(b *game.Board) string {
	p := b.ActivePlayer()
	best := ""
	bestScore := math.MinInt32
	for _, move := range b.LegalMoves(p) {
		child := b.Clone()
		child.ApplyMove(move)
		if score := game.BalanceScore(child, p); score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best
}

// pickAdaptive phases its play: advance early, trade off in the middle, and
// in the endgame either block a leading opponent or sprint home.
func pickAdaptive(b *game.Board) string {
	p := b.ActivePlayer()
	me, opp := b.Distance(p), b.Distance(p.Opponent())
	switch {
	case b.MoveCount() < earlyGamePlies:
		return pickShortestPath(b)
	case me <= endgameRange || opp <= endgameRange:
		if me > opp && b.WallsLeft(p) > 0 {
			if wall := bestBlockingWall(b, p); wall != "" {
				return wall
			}
		}
		return pickShortestPath(b)
	default:
		return pickBalanced(b)
	}
}

// pickMirror replays the opponent's last move reflected through the board
// centre, falling back to the shortest path when the reflection is illegal.
func pickMirror(b *game.Board) string {
	if last := b.LastMove(); last != "" {
		if mirrored, err := game.MirrorMove(b.Size, last); err == nil && b.Legal(mirrored) {
			return mirrored
		}
	}
	return pickShortestPath(b)
}
