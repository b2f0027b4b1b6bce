package gamemaster

import (
	"errors"

	"zones/game"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrCannotPass  = errors.New("cannot pass with a legal move available")
)

// Update is a single applied turn: a move or a pass.
type Update struct {
	Step    int
	Color   game.Color
	Move    game.Position // Destination, the mover's square on a pass
	Pass    bool
	Painted bool // The move painted a zone cell
	Node    game.Node
	Hash    game.StateHash
}

// Status summarizes a node for display.
type Status struct {
	Complete   bool
	Stalled    bool
	GreenZones int
	RedZones   int
	Painted    int
	Winner     game.Color
}

// StatusOf reports the status of a node on its own. Winner is None until
// the board is complete.
func StatusOf(node game.Node) Status {
	green, red := node.Board.ZoneControl()
	return Status{
		Complete:   node.Board.IsComplete(),
		GreenZones: green,
		RedZones:   red,
		Painted:    node.Board.Painted(),
		Winner:     node.Winner(),
	}
}
