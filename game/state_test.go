package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNodePlay(t *testing.T) {
	t.Run("moving onto a zone cell paints it and hands over the turn", func(t *testing.T) {
		node := NewNode(Position{2, 2}, Position{5, 5})

		child := node.Play(Position{0, 1})

		require.Equal(t, Position{0, 1}, child.Green)
		require.Equal(t, Position{5, 5}, child.Red)
		require.Equal(t, Red, child.Turn)
		require.Equal(t, Green, child.Board.At(Position{0, 1}).Owner)
		require.Equal(t, None, node.Board.At(Position{0, 1}).Owner, "Parent board should not change")
		require.Equal(t, Green, node.Turn, "Parent turn should not change")
	})

	t.Run("moving onto a neutral square leaves the board untouched", func(t *testing.T) {
		node := NewNode(Position{2, 2}, Position{5, 5})

		child := node.Play(Position{3, 4})

		require.Equal(t, node.Board, child.Board)
		require.Equal(t, Position{3, 4}, child.Green)
	})

	t.Run("red moves its own piece", func(t *testing.T) {
		node := NewNode(Position{2, 2}, Position{7, 4}).Pass()

		child := node.Play(Position{5, 5})

		require.Equal(t, Position{2, 2}, child.Green)
		require.Equal(t, Position{5, 5}, child.Red)
		require.Equal(t, Green, child.Turn)
	})

	t.Run("pieces never share a square during random play", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		for i := 0; i < 100; i++ {
			node := NewNode(Position{3, 3}, Position{4, 4})
			for step := 0; step < 200 && !node.Board.IsComplete(); step++ {
				moves := node.LegalMoves()
				if len(moves) == 0 {
					node = node.Pass()
					continue
				}
				node = node.Play(moves[rng.Intn(len(moves))])
				require.NotEqual(t, node.Green, node.Red)
			}
		}
	})

	t.Run("the board completes after exactly twenty paints", func(t *testing.T) {
		rng := rand.New(rand.NewSource(17))
		node := NewNode(Position{3, 3}, Position{4, 4})
		paints := 0
		for step := 0; step < 100000 && !node.Board.IsComplete(); step++ {
			moves := node.LegalMoves()
			dest := moves[rng.Intn(len(moves))]
			if node.Board.At(dest).IsZone() {
				paints++
			}
			node = node.Play(dest)
		}
		require.True(t, node.Board.IsComplete())
		require.Equal(t, ZoneCells, paints)
	})
}

func TestNodeWinner(t *testing.T) {
	t.Run("no winner while zone cells remain", func(t *testing.T) {
		node := NewNode(Position{3, 3}, Position{4, 4})
		node.Board = node.Board.Paint(Position{0, 0}, Green)

		require.Equal(t, None, node.Winner())
		require.Equal(t, Green, node.Leader())
	})

	t.Run("majority of zones wins a complete board", func(t *testing.T) {
		node := NewNode(Position{3, 3}, Position{4, 4})
		for zone, cells := range Zones {
			for i, p := range cells {
				color := Red
				if zone < 3 && i < 3 {
					color = Green
				}
				node.Board = node.Board.Paint(p, color)
			}
		}

		require.Equal(t, Green, node.Winner())
	})

	t.Run("split zones is a draw", func(t *testing.T) {
		node := NewNode(Position{3, 3}, Position{4, 4})
		for zone, cells := range Zones {
			for _, p := range cells {
				color := Red
				if zone%2 == 0 {
					color = Green
				}
				node.Board = node.Board.Paint(p, color)
			}
		}

		require.Equal(t, None, node.Winner())
	})
}

func TestNodeHash(t *testing.T) {
	t.Run("equal nodes hash equally", func(t *testing.T) {
		a := NewNode(Position{3, 3}, Position{4, 4}).Play(Position{1, 2})
		b := NewNode(Position{3, 3}, Position{4, 4}).Play(Position{1, 2})

		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("turn and paint change the hash", func(t *testing.T) {
		node := NewNode(Position{2, 2}, Position{4, 4})

		require.NotEqual(t, node.Hash(), node.Pass().Hash())
		require.NotEqual(t, node.Play(Position{0, 1}).Hash(), node.Play(Position{0, 3}).Hash())
	})
}

func TestColorText(t *testing.T) {
	for _, c := range []Color{None, Green, Red} {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var got Color
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, c, got)
	}

	var c Color
	require.Error(t, c.UnmarshalText([]byte("blue")))
}
