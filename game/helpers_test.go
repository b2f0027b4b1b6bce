package game

import "golang.org/x/exp/rand"

// playRandom plays up to plies random legal moves from the opening position,
// passing whenever the side to move is stuck.
func playRandom(rng *rand.Rand, plies int) Node {
	node := NewNode(Position{3, 3}, Position{4, 4})
	for i := 0; i < plies && !node.Board.IsComplete(); i++ {
		moves := node.LegalMoves()
		if len(moves) == 0 {
			node = node.Pass()
			continue
		}
		node = node.Play(moves[rng.Intn(len(moves))])
	}
	return node
}

func mustParse(rows ...string) Board {
	b, err := ParseBoard(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// wall marks squares as painted so no piece can land on them. Real games never
// produce painted neutral squares, this only builds artificial dead ends.
func wall(b Board, squares ...Position) Board {
	for _, p := range squares {
		b[p.Row][p.Col] = Cell{Zone: 0, Owner: Red}
	}
	return b
}
