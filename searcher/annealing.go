package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ODawson-Git/quoridor/game"
)

const (
	defaultAnnealingIterations = 100
	coolingRatio               = 0.95
)

// AnnealerOption configures an Annealer.
type AnnealerOption func(*Annealer)

func WithIterations(iterations int) AnnealerOption {
	return func(a *Annealer) {
		if iterations > 0 {
			a.iterations = iterations
		}
	}
}

func WithAnnealerRand(rng *rand.Rand) AnnealerOption {
	return func(a *Annealer) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// Annealer picks the next move by simulated annealing over the legal-move
// neighbourhood: the energy of a move is the negated balance score of the
// resulting position, and the temperature cools geometrically from its
// starting value over a fixed iteration budget.
type Annealer struct {
	temperature float64
	iterations  int
	rng         *rand.Rand
}

func NewAnnealer(temperature float64, options ...AnnealerOption) *Annealer {
	if temperature <= 0 {
		panic("annealing temperature must be positive")
	}
	a := &Annealer{temperature: temperature, iterations: defaultAnnealingIterations}
	for _, option := range options {
		option(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

// FindMove anneals over all legal moves and returns the lowest-energy move
// seen.
func (a *Annealer) FindMove(b *game.Board) (string, bool) {
	p := b.ActivePlayer()
	moves := b.LegalMoves(p)
	if len(moves) == 0 {
		return "", false
	}

	// Energies are stable per move, so compute lazily and memoise.
	energies := make([]float64, len(moves))
	computed := make([]bool, len(moves))
	energy := func(i int) float64 {
		if !computed[i] {
			child := b.Clone()
			child.ApplyMove(moves[i])
			energies[i] = -float64(game.BalanceScore(child, p))
			computed[i] = true
		}
		return energies[i]
	}

	current := a.rng.Intn(len(moves))
	best := current
	t := a.temperature
	for i := 0; i < a.iterations; i++ {
		next := a.rng.Intn(len(moves))
		delta := energy(next) - energy(current)
		if delta < 0 || a.rng.Float64() < math.Exp(-delta/t) {
			current = next
			if energy(current) < energy(best) {
				best = current
			}
		}
		t *= coolingRatio
	}
	return moves[best], true
}
