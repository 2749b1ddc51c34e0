package director

import (
	"math"

	"github.com/vovakirdan/director-arcade/internal/core"
)

// Bounds is an axis-aligned area in canvas units.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// RandomCoord returns a random point inside b snapped to the cell grid.
// Each axis has floor((max-min)/cell - 1) slots starting at min; an axis
// with no room collapses to its minimum.
func (d *Director) RandomCoord(b Bounds) core.Vec {
	cell := float64(d.cellSize)
	return core.Vec{
		X: b.MinX + d.slot(b.MinX, b.MaxX, cell)*cell,
		Y: b.MinY + d.slot(b.MinY, b.MaxY, cell)*cell,
	}
}

func (d *Director) slot(lo, hi, cell float64) float64 {
	count := int(math.Floor((hi-lo)/cell - 1))
	if count <= 0 {
		return 0
	}
	return float64(d.rng.Intn(count))
}
