// Package layout converts event times into percentage geometry for the
// calendar grids. Everything here is pure; callers scale the percentages to
// whatever number of rows or columns they render.
package layout

import "time"

// VerticalPosition is the placement of a block within a time column, in
// percent of the column height.
type VerticalPosition struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// HorizontalPosition is the placement of a bar within a row of days, in
// percent of the row width.
type HorizontalPosition struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// TopPercentByTime returns where t falls between start and end on a 0-100
// scale. t is clamped into the range first, so times outside it map to 0 or
// 100. A zero-length range maps everything to 0.
//
// start must not be after end; an inverted range gives a value in [0, 100]
// that carries no meaning.
func TopPercentByTime(t, start, end time.Time) float64 {
	startMs := start.UnixMilli()
	endMs := end.UnixMilli()

	elapsed := Limit(t.UnixMilli(), startMs, endMs) - startMs
	percent := Ratio(float64(endMs-startMs), 100, float64(elapsed))

	return Limit(percent, 0, 100)
}

// TopHeightByTime places the span [start, end] inside the range
// [minTime, maxTime]. Parts of the span outside the range are clipped, so a
// span entirely outside it has a height of 0.
func TopHeightByTime(start, end, minTime, maxTime time.Time) VerticalPosition {
	top := TopPercentByTime(start, minTime, maxTime)
	bottom := TopPercentByTime(end, minTime, maxTime)

	return VerticalPosition{
		Top:    top,
		Height: bottom - top,
	}
}

// LeftWidthByTime is TopHeightByTime for a horizontal axis.
func LeftWidthByTime(start, end, minTime, maxTime time.Time) HorizontalPosition {
	v := TopHeightByTime(start, end, minTime, maxTime)
	return HorizontalPosition{Left: v.Top, Width: v.Height}
}
