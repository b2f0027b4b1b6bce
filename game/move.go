package game

// KnightOffsets is the fixed enumeration order of knight jumps. Move
// generation, and therefore search tie-breaking, follows this order.
var KnightOffsets = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// LegalMoves returns the squares a knight on pos may jump to. A destination
// must lie on the board, differ from the opponent's square and be either
// neutral or an unpainted zone cell. An empty result means the piece is stuck.
func LegalMoves(pos Position, board Board, opponent Position) []Position {
	moves := make([]Position, 0, len(KnightOffsets))
	for _, offset := range KnightOffsets {
		dest := Position{Row: pos.Row + offset[0], Col: pos.Col + offset[1]}
		if isOpen(dest, board, opponent) {
			moves = append(moves, dest)
		}
	}
	return moves
}

// IsLegal reports whether dest is one of LegalMoves(pos, board, opponent).
func IsLegal(pos Position, board Board, opponent Position, dest Position) bool {
	dr, dc := dest.Row-pos.Row, dest.Col-pos.Col
	for _, offset := range KnightOffsets {
		if offset[0] == dr && offset[1] == dc {
			return isOpen(dest, board, opponent)
		}
	}
	return false
}

func isOpen(dest Position, board Board, opponent Position) bool {
	return dest.InBounds() && dest != opponent && board.At(dest).Open()
}
