package combat

// The sea is a single axis; positions are whole units and unbounded both ways.

// Distance between two ships along the axis.
func Distance(a, b *Ship) int { return abs(a.Position - b.Position) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
