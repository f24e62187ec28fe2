package searcher

import (
	"math"

	"github.com/ODawson-Git/quoridor/game"
)

// decision is one search-tree node. rewards accumulate from the perspective
// of the player who made the move leading into the node, so selection at any
// node can simply maximise over its children.
type decision struct {
	parent   *decision
	player   game.Player // mover of move; NoPlayer at the root
	move     string
	moves    []string // legal moves here; the unexpanded tail starts at len(children)
	children []*decision
	rewards  float64
	visits   int
}

func newDecision(parent *decision, move string, mover game.Player, b *game.Board) *decision {
	var moves []string
	if !b.Terminal() {
		moves = b.LegalMoves(b.ActivePlayer())
	}
	return &decision{parent: parent, player: mover, move: move, moves: moves}
}

// selectOrExpand advances one level: it expands the next untried move if one
// remains, otherwise descends to the UCT-best child. The board is mutated to
// follow. expanded reports whether a new node was attached; on a terminal
// node the receiver itself comes back.
func (d *decision) selectOrExpand(b *game.Board) (node *decision, expanded bool) {
	if len(d.moves) == 0 {
		return d, false
	}
	if len(d.children) < len(d.moves) {
		move := d.moves[len(d.children)]
		mover := b.ActivePlayer()
		b.ApplyMove(move)
		child := newDecision(d, move, mover, b)
		d.children = append(d.children, child)
		return child, true
	}
	child := d.pickChild()
	b.ApplyMove(child.move)
	return child, false
}

func (d *decision) pickChild() *decision {
	if d.visits == 0 {
		panic("cannot select from an unvisited node")
	}
	normalizer := cSquared * math.Log(float64(d.visits))

	best := d.children[0]
	bestScore := best.score(normalizer)
	for _, child := range d.children[1:] {
		score := child.score(normalizer)
		if score > bestScore || (score == bestScore && child.q() > best.q()) {
			best, bestScore = child, score
		}
	}
	return best
}

func (d *decision) score(normalizer float64) float64 {
	if d.visits == 0 {
		return math.Inf(1)
	}
	return d.q() + math.Sqrt(normalizer/float64(d.visits))
}

func (d *decision) q() float64 {
	if d.visits == 0 {
		return 0
	}
	return d.rewards / float64(d.visits)
}

// backup walks to the root, crediting the playout result to every node from
// its own mover's perspective.
func (d *decision) backup(winner game.Player) {
	for node := d; node != nil; node = node.parent {
		node.visits++
		node.rewards += reward(winner, node.player)
	}
}

func reward(winner, player game.Player) float64 {
	switch {
	case player == game.NoPlayer || winner == game.NoPlayer:
		return Draw
	case winner == player:
		return Win
	default:
		return Loss
	}
}

// bestMove returns the most-visited root move, ties broken by mean reward.
func (d *decision) bestMove() (string, bool) {
	if len(d.children) == 0 {
		return "", false
	}
	best := d.children[0]
	for _, child := range d.children[1:] {
		if child.visits > best.visits ||
			(child.visits == best.visits && child.q() > best.q()) {
			best = child
		}
	}
	return best.move, true
}
