package layout

import "math"

// ToCells scales a percentage to a whole number of cells out of total,
// rounding to the nearest cell.
func ToCells(percent float64, total int) int {
	if total <= 0 {
		return 0
	}
	return Limit(int(math.Round(Ratio(100, float64(total), percent))), 0, total)
}

// CellSpan converts a vertical position into the first row and the number of
// rows it covers out of total. Any block that touches the column gets at least
// one row, so short events stay visible.
func CellSpan(pos VerticalPosition, total int) (first, count int) {
	if total <= 0 {
		return 0, 0
	}
	top := Ratio(100, float64(total), pos.Top)
	bottom := Ratio(100, float64(total), pos.Top+pos.Height)

	first = Limit(int(math.Floor(top)), 0, total-1)
	last := Limit(int(math.Ceil(bottom)), first+1, total)
	return first, last - first
}
