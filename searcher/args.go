package searcher

// UCT exploration constant squared; the selection rule uses c = sqrt(2).
const cSquared = 2.0

// Playout outcomes from a node's player's perspective.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -1.0
)
