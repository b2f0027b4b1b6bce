package game

const neutralZone = -1

// Cell is a board square. Neutral squares carry zone -1 and are never painted.
type Cell struct {
	Zone  int8
	Owner Color
}

// IsZone reports whether the cell belongs to one of the corner zones.
func (c Cell) IsZone() bool {
	return c.Zone != neutralZone
}

// Open reports whether a piece may land on the cell: neutral, or an unpainted zone cell.
func (c Cell) Open() bool {
	return !c.IsZone() || c.Owner == None
}

// Board is a fixed 8x8 grid. It is a value: assigning a Board copies every cell.
type Board [Size][Size]Cell

// InitialBoard returns a board with all zone cells unpainted.
func InitialBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = Cell{Zone: zoneIndex[r][c], Owner: None}
		}
	}
	return b
}

func (b Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

// Paint returns a copy of the board with p painted in color. Neutral and
// already painted cells are left untouched, paint is write-once.
func (b Board) Paint(p Position, color Color) Board {
	cell := &b[p.Row][p.Col]
	if cell.IsZone() && cell.Owner == None {
		cell.Owner = color
	}
	return b
}

// ZoneCounts tallies the painted cells of a single zone.
func (b Board) ZoneCounts(zone int) (green, red int) {
	for _, p := range Zones[zone] {
		switch b.At(p).Owner {
		case Green:
			green++
		case Red:
			red++
		}
	}
	return green, red
}

// ZoneControl counts the zones held by a strict majority of each color. Ties
// credit neither side. It is recomputed from the cells on every call.
func (b Board) ZoneControl() (green, red int) {
	for zone := range Zones {
		g, r := b.ZoneCounts(zone)
		if g > r {
			green++
		} else if r > g {
			red++
		}
	}
	return green, red
}

// Painted returns the number of zone cells with an owner.
func (b Board) Painted() int {
	painted := 0
	for _, cells := range Zones {
		for _, p := range cells {
			if b.At(p).Owner != None {
				painted++
			}
		}
	}
	return painted
}

// IsComplete reports whether every zone cell has been painted.
func (b Board) IsComplete() bool {
	return b.Painted() == ZoneCells
}
