package screen

// Role is a block's position relative to nearby dark regions.
type Role uint8

const (
	RoleNeutral Role = iota
	// RoleRightDark marks a block whose right-hand neighbours are dark.
	RoleRightDark
	// RoleLeftDark marks a block whose left-hand neighbours are dark.
	RoleLeftDark
)

func (r Role) String() string {
	switch r {
	case RoleNeutral:
		return "Role(Neutral)"
	case RoleRightDark:
		return "Role(RightDark)"
	case RoleLeftDark:
		return "Role(LeftDark)"
	}
	return "Role(UNKNOWN)"
}

// Aggregate is the summed mean intensity of a vertical neighbour triple.
// Present is false when the triple lies outside the grid.
type Aggregate struct {
	Sum     int
	Present bool
}

type Classification struct {
	Role        Role
	Right, Left Aggregate
}

// DefaultDarkThreshold is the per-block mean below which a block counts
// as dark.
const DefaultDarkThreshold = 110

// Classifier compares the neighbour triples either side of a block with
// a per-block threshold. A triple is a sum of three means, so it is
// compared with 3*Threshold.
type Classifier struct {
	Threshold int
}

// Classify inspects the blocks (col±1, row-1..row+1). The first column
// has no left triple and the last column no right triple; those sides
// are reported as not present. Rows past the top or bottom edge reuse
// the middle block of the triple. A cell outside the grid is Neutral.
func (c Classifier) Classify(g *Grid, col, row int) Classification {
	var out Classification
	if !g.Contains(col, row) {
		return out
	}

	out.Right = g.triple(col+1, row)
	out.Left = g.triple(col-1, row)

	limit := 3 * c.Threshold
	switch {
	case out.Right.Present && out.Right.Sum < limit:
		out.Role = RoleRightDark
	case out.Left.Present && out.Left.Sum < limit:
		out.Role = RoleLeftDark
	}
	return out
}

func (g *Grid) triple(col, row int) Aggregate {
	if col < 0 || col >= g.Cols {
		return Aggregate{}
	}
	var sum int
	for dy := -1; dy <= 1; dy++ {
		r := clampInt(0, g.Rows-1, row+dy)
		sum += int(g.Blocks[r*g.Cols+col].Mean)
	}
	return Aggregate{Sum: sum, Present: true}
}
