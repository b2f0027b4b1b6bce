package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalMoves(t *testing.T) {
	t.Run("center square yields all jumps in offset order", func(t *testing.T) {
		got := LegalMoves(Position{3, 3}, InitialBoard(), Position{7, 4})

		require.Equal(t, []Position{
			{1, 2}, {1, 4}, {2, 1}, {2, 5},
			{4, 1}, {4, 5}, {5, 2}, {5, 4},
		}, got)
	})

	t.Run("corner square is filtered by bounds", func(t *testing.T) {
		got := LegalMoves(Position{0, 0}, InitialBoard(), Position{4, 4})

		require.Equal(t, []Position{{1, 2}, {2, 1}}, got)
	})

	t.Run("opponent square is never a destination", func(t *testing.T) {
		got := LegalMoves(Position{0, 0}, InitialBoard(), Position{1, 2})

		require.Equal(t, []Position{{2, 1}}, got)
	})

	t.Run("unowned zone cells are open, painted ones are not", func(t *testing.T) {
		b := InitialBoard()
		require.Contains(t, LegalMoves(Position{2, 2}, b, Position{7, 7}), Position{0, 1})

		b = b.Paint(Position{0, 1}, Green).Paint(Position{1, 0}, Red)
		got := LegalMoves(Position{2, 2}, b, Position{7, 7})

		require.Equal(t, []Position{{0, 3}, {1, 4}, {3, 0}, {3, 4}, {4, 1}, {4, 3}}, got)
	})

	t.Run("boxed in piece has no moves", func(t *testing.T) {
		b := wall(InitialBoard(), Position{2, 1})

		got := LegalMoves(Position{0, 0}, b, Position{1, 2})

		require.Empty(t, got)
		require.NotNil(t, got)
	})

	t.Run("never returns illegal destinations on random boards", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 300; i++ {
			node := playRandom(rng, rng.Intn(150))
			for _, side := range []Color{Green, Red} {
				opponent := node.Position(side.Opponent())
				for _, dest := range node.MovesFor(side) {
					require.True(t, dest.InBounds(), "Destination %v should be on the board", dest)
					require.NotEqual(t, opponent, dest, "Destination should not be the opponent's square")
					require.True(t, node.Board.At(dest).Open(), "Destination %v should not be painted", dest)
				}
			}
		}
	})

	t.Run("is pure", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		node := playRandom(rng, 40)
		before := node

		first := node.LegalMoves()
		second := node.LegalMoves()

		require.Equal(t, first, second)
		require.Equal(t, before, node)
	})
}

func TestIsLegal(t *testing.T) {
	b := InitialBoard().Paint(Position{0, 1}, Green)
	from := Position{2, 2}
	opponent := Position{4, 3}

	cases := []struct {
		name string
		dest Position
		want bool
	}{
		{"knight jump onto a neutral square", Position{3, 4}, true},
		{"knight jump onto an unpainted zone cell", Position{1, 0}, true},
		{"knight jump onto a painted zone cell", Position{0, 1}, false},
		{"knight jump onto the opponent", opponent, false},
		{"not a knight jump", Position{3, 3}, false},
		{"staying put", from, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsLegal(from, b, opponent, tc.dest))
		})
	}

	t.Run("agrees with LegalMoves", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		for i := 0; i < 100; i++ {
			node := playRandom(rng, rng.Intn(100))
			moves := node.LegalMoves()
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					dest := Position{r, c}
					require.Equal(t, contains(moves, dest),
						IsLegal(node.Mover(), node.Board, node.Position(node.Turn.Opponent()), dest))
				}
			}
		}
	})
}

func contains(moves []Position, p Position) bool {
	for _, m := range moves {
		if m == p {
			return true
		}
	}
	return false
}
