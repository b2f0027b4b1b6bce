package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Node is a complete snapshot of a game: enough to continue play or search.
// Nodes are values, every transition returns a fresh copy.
type Node struct {
	Board Board
	Green Position
	Red   Position
	Turn  Color
}

// NewNode returns the opening node for the given start squares, Green to move.
func NewNode(green, red Position) Node {
	return Node{
		Board: InitialBoard(),
		Green: green,
		Red:   red,
		Turn:  Green,
	}
}

// Position returns the square of the given side's piece.
func (n Node) Position(c Color) Position {
	if c == Red {
		return n.Red
	}
	return n.Green
}

// Mover returns the square of the piece whose turn it is.
func (n Node) Mover() Position {
	return n.Position(n.Turn)
}

// MovesFor returns the legal destinations of the given side's piece.
func (n Node) MovesFor(c Color) []Position {
	return LegalMoves(n.Position(c), n.Board, n.Position(c.Opponent()))
}

// LegalMoves returns the legal destinations of the side to move.
func (n Node) LegalMoves() []Position {
	return n.MovesFor(n.Turn)
}

// Play moves the side to move onto dest. See PlayAs.
func (n Node) Play(dest Position) Node {
	return n.PlayAs(n.Turn, dest)
}

// PlayAs moves c's piece onto dest, paints dest if it is an unpainted zone
// cell and hands the turn to c's opponent. dest is assumed legal.
func (n Node) PlayAs(c Color, dest Position) Node {
	n.Board = n.Board.Paint(dest, c)
	if c == Red {
		n.Red = dest
	} else {
		n.Green = dest
	}
	n.Turn = c.Opponent()
	return n
}

// Pass hands the turn over without moving.
func (n Node) Pass() Node {
	n.Turn = n.Turn.Opponent()
	return n
}

// Winner returns the color holding more zones once the board is complete,
// None while the game is running or when zones are split evenly.
func (n Node) Winner() Color {
	if !n.Board.IsComplete() {
		return None
	}
	return n.Leader()
}

// Leader returns the color currently holding more zones, None on a tie.
func (n Node) Leader() Color {
	green, red := n.Board.ZoneControl()
	switch {
	case green > red:
		return Green
	case red > green:
		return Red
	default:
		return None
	}
}

func (n Node) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move and both pieces
	binary.Write(hasher, binary.LittleEndian, int64(n.Turn))
	for _, p := range []Position{n.Green, n.Red} {
		binary.Write(hasher, binary.LittleEndian, int64(p.Row))
		binary.Write(hasher, binary.LittleEndian, int64(p.Col))
	}

	// Hash zone ownership
	for _, cells := range Zones {
		for _, p := range cells {
			binary.Write(hasher, binary.LittleEndian, int64(n.Board.At(p).Owner))
		}
	}

	return StateHash(hasher.Sum64())
}
