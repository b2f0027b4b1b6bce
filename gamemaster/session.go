package gamemaster

import (
	"fmt"

	"zones/game"
	"zones/utils"
)

// Intn is the random source used to draw start squares.
type Intn interface {
	Intn(n int) int
}

// Session is the caller-owned state of one game. It validates every turn
// before applying it. A Session is not safe for concurrent use.
type Session struct {
	node   game.Node
	steps  int
	passes int // Consecutive
	total  int // All passes
}

// NewSession starts a game with both pieces on distinct random neutral squares.
func NewSession(random Intn) *Session {
	squares := game.NeutralSquares()
	i := random.Intn(len(squares))
	green := squares[i]
	squares = utils.RemoveAt(squares, i)
	red := squares[random.Intn(len(squares))]
	return NewSessionAt(green, red)
}

// NewSessionAt starts a game from fixed start squares. It panics if both
// pieces share a square or a square is off the board.
func NewSessionAt(green, red game.Position) *Session {
	if !green.InBounds() || !red.InBounds() {
		panic(fmt.Sprintf("start squares out of bounds: green=%v red=%v", green, red))
	}
	if green == red {
		panic(fmt.Sprintf("pieces share the start square %v", green))
	}
	return &Session{node: game.NewNode(green, red)}
}

// Resume continues a game from an arbitrary node.
func Resume(node game.Node) *Session {
	return &Session{node: node}
}

func (s *Session) Node() game.Node {
	return s.node
}

func (s *Session) Turn() game.Color {
	return s.node.Turn
}

func (s *Session) LegalMoves() []game.Position {
	return s.node.LegalMoves()
}

// Stalled reports whether both sides passed in a row. Neither piece can
// move again, the game ends with the zones held at that point.
func (s *Session) Stalled() bool {
	return s.passes >= 2
}

// Over reports whether the board is complete or the game is stalled.
func (s *Session) Over() bool {
	return s.node.Board.IsComplete() || s.Stalled()
}

// Passes returns the number of passes played so far.
func (s *Session) Passes() int {
	return s.total
}

// Steps returns the number of applied turns.
func (s *Session) Steps() int {
	return s.steps
}

func (s *Session) Status() Status {
	status := StatusOf(s.node)
	if s.Stalled() {
		status.Stalled = true
		status.Winner = s.node.Leader()
	}
	return status
}

// Play moves color's piece onto dest.
func (s *Session) Play(color game.Color, dest game.Position) (Update, error) {
	if err := s.check(color); err != nil {
		return Update{}, err
	}
	if !game.IsLegal(s.node.Mover(), s.node.Board, s.node.Position(color.Opponent()), dest) {
		return Update{}, fmt.Errorf("%s to %v: %w", color, dest, ErrIllegalMove)
	}

	painted := s.node.Board.At(dest).IsZone()
	s.node = s.node.Play(dest)
	s.passes = 0
	return s.record(Update{Color: color, Move: dest, Painted: painted}), nil
}

// Pass hands the turn over. It is only allowed when color has no legal move.
func (s *Session) Pass(color game.Color) (Update, error) {
	if err := s.check(color); err != nil {
		return Update{}, err
	}
	if len(s.node.LegalMoves()) > 0 {
		return Update{}, fmt.Errorf("%s: %w", color, ErrCannotPass)
	}

	move := s.node.Mover()
	s.node = s.node.Pass()
	s.passes++
	s.total++
	return s.record(Update{Color: color, Move: move, Pass: true}), nil
}

func (s *Session) check(color game.Color) error {
	if s.Over() {
		return ErrGameOver
	}
	if color != s.node.Turn {
		return fmt.Errorf("%s moved on %s's turn: %w", color, s.node.Turn, ErrNotYourTurn)
	}
	return nil
}

func (s *Session) record(u Update) Update {
	s.steps++
	u.Step = s.steps
	u.Node = s.node
	u.Hash = s.node.Hash()
	return u
}
