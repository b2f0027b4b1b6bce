package game

import (
	"errors"
	"fmt"
	"strings"
)

// Board notation: one string per row, one rune per square.
const (
	neutralRune = '.'
	openRune    = 'o'
	greenRune   = 'G'
	redRune     = 'R'
)

var ErrMalformedBoard = errors.New("malformed board")

// Rows renders the board as Size strings of Size runes.
func (b Board) Rows() []string {
	rows := make([]string, Size)
	for r := range b {
		var sb strings.Builder
		for _, cell := range b[r] {
			sb.WriteRune(cellRune(cell))
		}
		rows[r] = sb.String()
	}
	return rows
}

func (b Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

func cellRune(cell Cell) rune {
	if !cell.IsZone() {
		return neutralRune
	}
	switch cell.Owner {
	case Green:
		return greenRune
	case Red:
		return redRune
	default:
		return openRune
	}
}

// ParseBoard reads the notation produced by Rows. Zone runes are only
// accepted on zone squares and '.' only on neutral squares.
func ParseBoard(rows []string) (Board, error) {
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedBoard, Size, len(rows))
	}
	b := InitialBoard()
	for r, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d squares", ErrMalformedBoard, r, len(row))
		}
		for c, ch := range row {
			cell := &b[r][c]
			switch {
			case ch == neutralRune && !cell.IsZone():
			case ch == openRune && cell.IsZone():
			case ch == greenRune && cell.IsZone():
				cell.Owner = Green
			case ch == redRune && cell.IsZone():
				cell.Owner = Red
			default:
				return Board{}, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedBoard, ch, r, c)
			}
		}
	}
	return b, nil
}
