package effects

import "math"

// Grid is the slowly scrolling line overlay.
type Grid struct {
	Period float64 // seconds to scroll one full cell
}

// Cell returns the cell size for a surface width: 3% of the width, kept within [30, 50].
func (Grid) Cell(width float64) float64 {
	return Clamp(width*0.03, 30, 50)
}

// Offset returns how far the grid has scrolled diagonally, in [0, cell).
func (g Grid) Offset(elapsed, cell float64) float64 {
	if g.Period <= 0 || cell <= 0 {
		return 0
	}
	phase := elapsed / g.Period
	return (phase - math.Floor(phase)) * cell
}

// Lines returns the positions of the grid lines along one axis of the given extent.
func (g Grid) Lines(extent, cell, offset float64) []float64 {
	if cell <= 0 || extent <= 0 {
		return nil
	}
	out := make([]float64, 0, int(extent/cell)+2)
	for p := offset - cell; p <= extent; p += cell {
		if p >= 0 {
			out = append(out, p)
		}
	}
	return out
}
