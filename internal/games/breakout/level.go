package breakout

import "github.com/vovakirdan/director-arcade/internal/core"

// Layout places up to total bricks row by row. Bricks are brickW wide and
// one cell tall, separated by one cell horizontally and one empty row
// vertically, inside a board boardW wide. Rows stop before maxY.
func Layout(total int, boardW, brickW, cell, maxY float64) []core.Vec {
	drawable := boardW - 2*cell
	bricks := make([]core.Vec, 0, max(total, 0))

	row, col := 0, 0
	for len(bricks) < total {
		x := float64(col)*brickW + float64(col+1)*cell
		y := float64(2*row+1) * cell
		if y+cell > maxY {
			break
		}
		if x+brickW > drawable {
			if col == 0 {
				break // A single brick does not fit
			}
			row++
			col = 0
			continue
		}
		bricks = append(bricks, core.Vec{X: x, Y: y})
		col++
	}
	return bricks
}

// brickRow returns the row index of a brick at height y.
func brickRow(y, cell float64) int {
	return core.Round((y/cell - 1) / 2)
}
