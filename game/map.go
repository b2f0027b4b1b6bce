package game

const (
	NumZones = 4
	ZoneSize = 5
	// ZoneCells is the number of paintable cells on the board
	ZoneCells = NumZones * ZoneSize
)

// Zones lists the member cells of every corner zone, in a fixed order.
var Zones = [NumZones][ZoneSize]Position{
	{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}},
	{{0, 7}, {0, 6}, {0, 5}, {1, 7}, {2, 7}},
	{{7, 0}, {7, 1}, {7, 2}, {6, 0}, {5, 0}},
	{{7, 7}, {7, 6}, {7, 5}, {6, 7}, {5, 7}},
}

// zoneIndex maps every square to its zone ID, -1 for neutral squares.
var zoneIndex = createZoneIndex()

func createZoneIndex() [Size][Size]int8 {
	var index [Size][Size]int8
	for r := range index {
		for c := range index[r] {
			index[r][c] = neutralZone
		}
	}
	for zone, cells := range Zones {
		for _, p := range cells {
			index[p.Row][p.Col] = int8(zone)
		}
	}
	return index
}

// ZoneOf returns the zone containing p, or -1 when p is neutral.
func ZoneOf(p Position) int {
	return int(zoneIndex[p.Row][p.Col])
}

// NeutralSquares returns every square outside the zones in row-major order.
func NeutralSquares() []Position {
	squares := make([]Position, 0, Size*Size-ZoneCells)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if zoneIndex[r][c] == neutralZone {
				squares = append(squares, Position{r, c})
			}
		}
	}
	return squares
}
