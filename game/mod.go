package game

import "fmt"

// Size is the number of rows and columns of the board.
const Size = 8

// Color identifies a side, and the owner of a painted zone cell.
type Color int8

const (
	None Color = iota
	Green
	Red
)

// Opponent returns the other side. None has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Green:
		return Red
	case Red:
		return Green
	default:
		return None
	}
}

func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case Red:
		return "red"
	default:
		return "none"
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "green":
		*c = Green
	case "red":
		*c = Red
	case "none", "":
		*c = None
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

// Position is a square on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type StateHash uint64

// Evaluation scores a node statically. Higher scores favor Green.
type Evaluation func(Node) int
