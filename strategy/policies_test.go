package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ODawson-Git/quoridor/game"
)

// newPolicy builds a strategy with no scripted opening so the policy itself
// is exercised from the first move.
func newPolicy(t *testing.T, name string, p game.Player) *Strategy {
	t.Helper()
	s, err := New(name, "Shatranj Opening", p, WithSeed(5))
	require.NoError(t, err)
	if p == game.Player1 {
		// Shatranj's only scripted move is illegal, killing the script.
		s.abandoned = true
	}
	return s
}

func TestShortestPathPolicy(t *testing.T) {
	s := newPolicy(t, "ShortestPath", game.Player1)

	move, err := s.ChooseMove(game.NewBoard(9, 10))
	require.NoError(t, err)
	require.Equal(t, "e2", move)
}

func TestDefensivePolicyBlocksWhenThreatened(t *testing.T) {
	// The race is level, which is within the defensive margin, so a wall
	// that lengthens player 2's path must be chosen. The pawns stand on
	// different files, so a wall can slow player 2 without slowing player 1.
	b, err := game.ParseState(9, 10, " / / d1 f9 / 10 10 / 1")
	require.NoError(t, err)
	s := newPolicy(t, "Defensive", game.Player1)

	move, err := s.ChooseMove(b)
	require.NoError(t, err)
	require.True(t, game.IsWallString(move), "expected a blocking wall, got %s", move)

	m, err := game.ParseMove(9, move)
	require.NoError(t, err)
	d1Before, d2Before := b.Distance(game.Player1), b.Distance(game.Player2)
	d1, d2 := b.DistancesAfterWall(m)
	require.Greater(t, d2-d2Before, d1-d1Before, "the wall must cost player 2 more than player 1")
}

func TestDefensivePolicyAdvancesWhenAhead(t *testing.T) {
	// Player 1 is four moves ahead; no need to spend walls.
	b, err := game.ParseState(9, 10, " / / e6 e8 / 10 10 / 1")
	require.NoError(t, err)
	s := newPolicy(t, "Defensive", game.Player1)

	move, err := s.ChooseMove(b)
	require.NoError(t, err)
	require.Equal(t, "e7", move)
}

func TestBalancedPolicyTakesTheWin(t *testing.T) {
	b, err := game.ParseState(9, 10, " / / e8 d9 / 10 10 / 1")
	require.NoError(t, err)
	s := newPolicy(t, "Balanced", game.Player1)

	move, err := s.ChooseMove(b)
	require.NoError(t, err)
	require.Equal(t, "e9", move)
}

func TestAdaptivePolicyPhases(t *testing.T) {
	t.Run("early game advances", func(t *testing.T) {
		s := newPolicy(t, "Adaptive", game.Player1)
		move, err := s.ChooseMove(game.NewBoard(9, 10))
		require.NoError(t, err)
		require.Equal(t, "e2", move)
	})

	t.Run("endgame behind reaches for a wall", func(t *testing.T) {
		// Player 1 shuffles on its home row while player 2 sprints to
		// within two steps of goal: a blocking situation. Player 1 ends on
		// the c-file, so a wall can slow player 2 without slowing player 1.
		b := game.NewBoard(9, 10)
		for _, m := range []string{"d1", "e8", "c1", "e7", "d1", "e6", "c1", "e5", "d1", "e4", "c1", "e3"} {
			require.True(t, b.ApplyMove(m), "setup move %s", m)
		}
		s := newPolicy(t, "Adaptive", game.Player1)
		move, err := s.ChooseMove(b)
		require.NoError(t, err)
		require.True(t, game.IsWallString(move), "expected a wall, got %s", move)
	})
}

func TestMirrorPolicy(t *testing.T) {
	t.Run("reflects the opponent's pawn move", func(t *testing.T) {
		b := game.NewBoard(9, 10)
		require.True(t, b.ApplyMove("e2"))

		s := newPolicy(t, "Mirror", game.Player2)
		move, err := s.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, "e8", move, "e2 reflected through the centre")
	})

	t.Run("reflects a wall move", func(t *testing.T) {
		b := game.NewBoard(9, 10)
		require.True(t, b.ApplyMove("c3h"))

		s := newPolicy(t, "Mirror", game.Player2)
		move, err := s.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, "f6h", move)
	})

	t.Run("falls back when the reflection is illegal", func(t *testing.T) {
		b := game.NewBoard(9, 10)
		for _, m := range []string{"e2", "d9", "e3", "e9", "e4", "d9", "e5"} {
			require.True(t, b.ApplyMove(m), "setup move %s", m)
		}

		// e5 reflects onto itself and the square is occupied, so the
		// policy falls back to the shortest path.
		s := newPolicy(t, "Mirror", game.Player2)
		move, err := s.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, "d8", move)
	})
}

func TestRandomPolicyStaysLegal(t *testing.T) {
	b := game.NewBoard(9, 10)
	s := newPolicy(t, "Random", game.Player1)

	for i := 0; i < 10 && !b.Terminal(); i++ {
		move, err := s.ChooseMove(b)
		require.NoError(t, err)
		require.True(t, b.Legal(move), "move %s at ply %d", move, i)
		require.True(t, b.ApplyMove(move))
		// Any reply keeps the game moving.
		if !b.Terminal() {
			require.True(t, b.ApplyMove(b.LegalPawnMoves(b.ActivePlayer())[0]))
		}
	}
}
