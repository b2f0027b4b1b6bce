// Package communication holds the JSON messages exchanged between the HTTP
// server and its clients.
package communication

import (
	"errors"
	"fmt"

	"zones/experiments/metrics"
	"zones/game"
	"zones/gamemaster"
	"zones/searcher/agent"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrSharedSquare = errors.New("pieces share a square")
)

// Node is the wire form of game.Node. An empty board is the initial board,
// an empty turn is Green's.
type Node struct {
	Board []string      `json:"board,omitempty"`
	Green game.Position `json:"green"`
	Red   game.Position `json:"red"`
	Turn  game.Color    `json:"turn,omitempty"`
}

func FromNode(n game.Node) Node {
	return Node{
		Board: n.Board.Rows(),
		Green: n.Green,
		Red:   n.Red,
		Turn:  n.Turn,
	}
}

// Decode validates the wire form and returns the node it describes.
func (d Node) Decode() (game.Node, error) {
	board := game.InitialBoard()
	if len(d.Board) > 0 {
		var err error
		if board, err = game.ParseBoard(d.Board); err != nil {
			return game.Node{}, err
		}
	}
	for _, p := range []game.Position{d.Green, d.Red} {
		if !p.InBounds() {
			return game.Node{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	if d.Green == d.Red {
		return game.Node{}, fmt.Errorf("%w: %v", ErrSharedSquare, d.Green)
	}

	turn := d.Turn
	if turn == game.None {
		turn = game.Green
	}
	return game.Node{Board: board, Green: d.Green, Red: d.Red, Turn: turn}, nil
}

type MovesResponse struct {
	Moves []game.Position `json:"moves"`
}

type FindMoveRequest struct {
	Node       Node             `json:"node"`
	Difficulty agent.Difficulty `json:"difficulty"`
	Seed       *uint64          `json:"seed,omitempty"`
}

type SearchMetric struct {
	Depth      int   `json:"depth"`
	Nodes      int   `json:"nodes"`
	Leaves     int   `json:"leaves"`
	Cutoffs    int   `json:"cutoffs"`
	DurationUS int64 `json:"duration_us"`
	Random     bool  `json:"random"`
}

func FromSearchMetric(m metrics.SearchMetric) SearchMetric {
	return SearchMetric{
		Depth:      m.Depth,
		Nodes:      m.Nodes,
		Leaves:     m.Leaves,
		Cutoffs:    m.Cutoffs,
		DurationUS: m.Duration.Microseconds(),
		Random:     m.Random,
	}
}

type FindMoveResponse struct {
	Move    game.Position `json:"move"`
	Pass    bool          `json:"pass"`
	Metrics SearchMetric  `json:"metrics"`
}

type NodeRequest struct {
	Node Node `json:"node"`
}

type Status struct {
	Complete   bool       `json:"complete"`
	Stalled    bool       `json:"stalled,omitempty"`
	GreenZones int        `json:"green_zones"`
	RedZones   int        `json:"red_zones"`
	Painted    int        `json:"painted"`
	Winner     game.Color `json:"winner"`
}

func FromStatus(s gamemaster.Status) Status {
	return Status(s)
}

type EvaluateResponse struct {
	Score int `json:"score"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Message types of the watch stream.
const (
	UpdateMessage = "update"
	ResultMessage = "result"
)

// WatchMessage is one frame of the watch stream: an applied turn, or the
// final result once the game is over.
type WatchMessage struct {
	Type   string  `json:"type"`
	Update *Update `json:"update,omitempty"`
	Result *Status `json:"result,omitempty"`
	Green  string  `json:"green,omitempty"` // Agent names, set on the result
	Red    string  `json:"red,omitempty"`
}

type Update struct {
	Step    int           `json:"step"`
	Color   game.Color    `json:"color"`
	Move    game.Position `json:"move"`
	Pass    bool          `json:"pass"`
	Painted bool          `json:"painted"`
	Node    Node          `json:"node"`
	Hash    string        `json:"hash"`
}

func FromUpdate(u gamemaster.Update) Update {
	return Update{
		Step:    u.Step,
		Color:   u.Color,
		Move:    u.Move,
		Pass:    u.Pass,
		Painted: u.Painted,
		Node:    FromNode(u.Node),
		Hash:    fmt.Sprintf("%016x", uint64(u.Hash)),
	}
}
