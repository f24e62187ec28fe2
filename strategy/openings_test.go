package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ODawson-Git/quoridor/game"
)

func TestOpeningBookLoads(t *testing.T) {
	names := OpeningNames()
	require.Len(t, names, 16)
	require.Equal(t, "No Opening", names[0], "book order is preserved")

	for _, want := range []string{
		"No Opening", "Sidewall Opening", "Standard Opening", "Shiller Opening",
		"Stonewall", "Ala Opening", "Standard Opening (Symmetrical)",
		"Rush Variation", "Gap Opening", "Gap Opening (Mainline)", "Anti-Gap",
		"Sidewall", "Sidewall (Proper Counter)", "Quick Box Variation",
		"Shatranj Opening", "Lee Inversion",
	} {
		require.Contains(t, names, want)
	}
}

func TestOpeningMoves(t *testing.T) {
	t.Run("both sides of a line", func(t *testing.T) {
		p1, err := OpeningMoves("Standard Opening", game.Player1)
		require.NoError(t, err)
		require.Equal(t, []string{"e2", "e3", "e4", "e3v"}, p1)

		p2, err := OpeningMoves("Standard Opening", game.Player2)
		require.NoError(t, err)
		require.Equal(t, []string{"e8", "e7", "e6", "e6v"}, p2)
	})

	t.Run("a one-sided line", func(t *testing.T) {
		p2, err := OpeningMoves("Shatranj Opening", game.Player2)
		require.NoError(t, err)
		require.Empty(t, p2)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := OpeningMoves("Grob Attack", game.Player1)
		require.ErrorIs(t, err, ErrUnknownOpening)
	})
}

func TestScriptedMovesAreWellFormed(t *testing.T) {
	// Every scripted move must at least parse; legality is checked live.
	for _, name := range OpeningNames() {
		for _, p := range []game.Player{game.Player1, game.Player2} {
			moves, err := OpeningMoves(name, p)
			require.NoError(t, err)
			for _, m := range moves {
				_, err := game.ParseMove(9, m)
				require.NoError(t, err, "opening %q move %q", name, m)
			}
		}
	}
}
