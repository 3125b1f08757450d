package geometry

import "fyne.io/fyne/v2"

// Cell is one item to be placed
type Cell struct {
	Span   int
	Height float32
}

// Rect is where a cell ended up
type Rect struct {
	Pos  fyne.Position
	Size fyne.Size
}

// ColumnCount returns how many columns of colWidth fit in width
func ColumnCount(width, colWidth, gap float32) int {
	if colWidth <= 0 {
		return 1
	}
	n := int((width + gap) / (colWidth + gap))
	if n < 1 {
		return 1
	}
	return n
}

// Place packs cells in order, each into the run of columns whose tallest
// column is shortest. Wide cells are clamped to the column count.
// It returns the rects and the total height used.
func Place(cells []Cell, columns int, colWidth, gap float32) ([]Rect, float32) {
	if columns < 1 {
		columns = 1
	}
	heights := make([]float32, columns)
	rects := make([]Rect, len(cells))

	for i, cell := range cells {
		span := cell.Span
		if span < 1 {
			span = 1
		}
		if span > columns {
			span = columns
		}

		best, bestY := 0, float32(-1)
		for c := 0; c+span <= columns; c++ {
			y := maxOf(heights[c : c+span])
			if bestY < 0 || y < bestY {
				best, bestY = c, y
			}
		}

		width := float32(span)*colWidth + float32(span-1)*gap
		rects[i] = Rect{
			Pos:  fyne.NewPos(float32(best)*(colWidth+gap), bestY),
			Size: fyne.NewSize(width, cell.Height),
		}
		for c := best; c < best+span; c++ {
			heights[c] = bestY + cell.Height + gap
		}
	}

	total := maxOf(heights)
	if total > 0 {
		total -= gap
	}
	return rects, total
}

func maxOf(values []float32) float32 {
	var m float32
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
