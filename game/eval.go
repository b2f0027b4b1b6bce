package game

// Weights of the default evaluation. Zone balance dominates because zone
// majorities decide the game.
const (
	ZoneWeight     = 10
	MobilityWeight = 2
)

// Evaluate scores a node from Green's point of view: the painted cell balance
// of every zone plus the difference in available knight moves.
func Evaluate(n Node) int {
	balance := 0
	for zone := range Zones {
		green, red := n.Board.ZoneCounts(zone)
		balance += green - red
	}
	return ZoneWeight*balance + MobilityWeight*mobility(n)
}

// EvaluatePainted is the earliest scoring of the game: every painted cell is
// worth 100 regardless of its zone, with mobility as a tie breaker.
func EvaluatePainted(n Node) int {
	green, red := 0, 0
	for _, cells := range Zones {
		for _, p := range cells {
			switch n.Board.At(p).Owner {
			case Green:
				green++
			case Red:
				red++
			}
		}
	}
	return (green-red)*100 + mobility(n)
}

func mobility(n Node) int {
	return len(n.MovesFor(Green)) - len(n.MovesFor(Red))
}
