package gamemaster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"zones/game"
)

type fixedRandom []int

func (f *fixedRandom) Intn(n int) int {
	i := (*f)[0] % n
	*f = (*f)[1:]
	return i
}

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

// block paints squares so no piece can land there.
func block(s *Session, squares ...game.Position) {
	for _, p := range squares {
		s.node.Board[p.Row][p.Col] = game.Cell{Zone: 0, Owner: game.Red}
	}
}

func TestNewSession(t *testing.T) {
	t.Run("draws distinct neutral start squares", func(t *testing.T) {
		random := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			node := NewSession(random).Node()
			require.NotEqual(t, node.Green, node.Red)
			require.False(t, node.Board.At(node.Green).IsZone(), "Green should start on a neutral square")
			require.False(t, node.Board.At(node.Red).IsZone(), "Red should start on a neutral square")
			require.Equal(t, game.Green, node.Turn)
		}
	})

	t.Run("same draw is never reused for red", func(t *testing.T) {
		node := NewSession(&fixedRandom{0, 0}).Node()
		require.Equal(t, pos(0, 3), node.Green)
		require.Equal(t, pos(0, 4), node.Red)
	})

	t.Run("rejects shared start squares", func(t *testing.T) {
		require.Panics(t, func() { NewSessionAt(pos(3, 3), pos(3, 3)) })
		require.Panics(t, func() { NewSessionAt(pos(8, 3), pos(3, 3)) })
	})
}

func TestSessionPlay(t *testing.T) {
	t.Run("applies a legal move", func(t *testing.T) {
		s := NewSessionAt(pos(2, 2), pos(5, 5))

		u, err := s.Play(game.Green, pos(0, 1))

		require.NoError(t, err)
		require.Equal(t, 1, u.Step)
		require.True(t, u.Painted)
		require.False(t, u.Pass)
		require.Equal(t, game.Green, s.Node().Board.At(pos(0, 1)).Owner)
		require.Equal(t, game.Red, s.Turn())
		require.Equal(t, s.Node().Hash(), u.Hash)
	})

	t.Run("neutral moves paint nothing", func(t *testing.T) {
		s := NewSessionAt(pos(2, 2), pos(5, 5))

		u, err := s.Play(game.Green, pos(3, 4))

		require.NoError(t, err)
		require.False(t, u.Painted)
		require.Zero(t, s.Node().Board.Painted())
	})

	t.Run("rejects moves out of turn", func(t *testing.T) {
		s := NewSessionAt(pos(2, 2), pos(5, 5))

		_, err := s.Play(game.Red, pos(3, 3))

		require.ErrorIs(t, err, ErrNotYourTurn)
		require.Zero(t, s.Steps())
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		s := NewSessionAt(pos(2, 2), pos(5, 5))

		for _, dest := range []game.Position{pos(3, 3), pos(2, 2), pos(-1, 1)} {
			_, err := s.Play(game.Green, dest)
			require.ErrorIs(t, err, ErrIllegalMove, "Move to %v should be illegal", dest)
		}
	})

	t.Run("rejects a painted destination", func(t *testing.T) {
		s := NewSessionAt(pos(2, 2), pos(5, 5))
		_, err := s.Play(game.Green, pos(0, 1))
		require.NoError(t, err)
		_, err = s.Play(game.Red, pos(3, 4))
		require.NoError(t, err)
		_, err = s.Play(game.Green, pos(2, 2))
		require.NoError(t, err)
		_, err = s.Play(game.Red, pos(5, 5))
		require.NoError(t, err)

		_, err = s.Play(game.Green, pos(0, 1))

		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestSessionPass(t *testing.T) {
	t.Run("rejects a pass with moves available", func(t *testing.T) {
		s := NewSessionAt(pos(2, 2), pos(5, 5))

		_, err := s.Pass(game.Green)

		require.ErrorIs(t, err, ErrCannotPass)
	})

	t.Run("stuck mover passes", func(t *testing.T) {
		s := NewSessionAt(pos(0, 0), pos(1, 2))
		block(s, pos(2, 1))

		u, err := s.Pass(game.Green)

		require.NoError(t, err)
		require.True(t, u.Pass)
		require.Equal(t, pos(0, 0), u.Move)
		require.Equal(t, game.Red, s.Turn())
		require.False(t, s.Stalled())
		require.Equal(t, 1, s.Passes())
	})

	t.Run("two passes in a row stall the game", func(t *testing.T) {
		s := NewSessionAt(pos(0, 0), pos(1, 2))
		block(s, pos(2, 1), pos(0, 4), pos(2, 0), pos(2, 4), pos(3, 1), pos(3, 3))

		_, err := s.Pass(game.Green)
		require.NoError(t, err)
		_, err = s.Pass(game.Red)
		require.NoError(t, err)

		require.True(t, s.Stalled())
		require.True(t, s.Over())
		status := s.Status()
		require.True(t, status.Stalled)
		require.False(t, status.Complete)
		require.Equal(t, game.Red, status.Winner, "Red holds the only painted zone cell")

		_, err = s.Pass(game.Green)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("a move resets the pass streak", func(t *testing.T) {
		s := NewSessionAt(pos(0, 0), pos(1, 2))
		block(s, pos(2, 1), pos(1, 2)) // Green stays stuck after Red leaves

		_, err := s.Pass(game.Green)
		require.NoError(t, err)
		_, err = s.Play(game.Red, pos(3, 3))
		require.NoError(t, err)
		_, err = s.Pass(game.Green)
		require.NoError(t, err)

		require.False(t, s.Stalled())
		require.Equal(t, 2, s.Passes())
	})
}

func TestSessionCompleteGame(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	s := NewSession(random)

	painted := 0
	for step := 1; !s.Over(); step++ {
		require.Less(t, step, 100000, "Game should complete")
		moves := s.LegalMoves()
		require.NotEmpty(t, moves, "Pieces cannot get stuck without walls")
		u, err := s.Play(s.Turn(), moves[random.Intn(len(moves))])
		require.NoError(t, err)
		require.Equal(t, step, u.Step)
		if u.Painted {
			painted++
		}
	}
	require.Equal(t, game.ZoneCells, painted, "Every zone cell is painted exactly once")

	status := s.Status()
	require.True(t, status.Complete)
	require.Equal(t, game.ZoneCells, status.Painted)
	require.Equal(t, s.Node().Winner(), status.Winner)

	_, err := s.Play(s.Turn(), s.LegalMoves()[0])
	require.ErrorIs(t, err, ErrGameOver)
}

func TestStatusOf(t *testing.T) {
	status := StatusOf(game.NewNode(pos(3, 3), pos(4, 4)))

	require.Equal(t, Status{Winner: game.None}, status)
}
