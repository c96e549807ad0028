package layout

import (
	"time"

	"lazycal/array"
)

// Span is a block of time to be drawn in a time column.
type Span struct {
	Start time.Time
	End   time.Time
}

// Placement is where a span ends up in a day column: its vertical position
// and the side-by-side column it shares with overlapping spans.
type Placement struct {
	Index   int     `json:"index"`   // position of the span in the input slice
	Group   int     `json:"group"`   // spans that overlap, directly or through others, share a group
	Column  int     `json:"column"`  // zero-based column within the group
	Columns int     `json:"columns"` // number of columns the group needs
	Top     float64 `json:"top"`
	Height  float64 `json:"height"`
	Left    float64 `json:"left"`
	Width   float64 `json:"width"`
}

type activeSpan struct {
	end    time.Time
	column int
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

// Arrange lays spans out inside [minTime, maxTime]. Overlapping spans are
// split into columns, each span taking the lowest column free at its start.
// The result is indexed like spans.
func Arrange(spans []Span, minTime, maxTime time.Time) []Placement {
	placements := make([]Placement, len(spans))
	if len(spans) == 0 {
		return placements
	}

	// Earlier starts first; on equal starts the longer span goes first so it
	// takes the leftmost column.
	order := make([]int, 0, len(spans))
	for i := range spans {
		order = array.InsertFunc(order, i, func(i int) Span { return spans[i] }, compareSpans)
	}

	var (
		active  []activeSpan // sorted by end
		free    []int        // released columns, ascending
		members []int
		columns int
		group   int
	)

	closeGroup := func() {
		for _, idx := range members {
			placements[idx].Columns = columns
		}
		members = members[:0]
		free = free[:0]
		columns = 0
		group++
	}

	for _, idx := range order {
		span := spans[idx]

		// Every active span ending at or before this start frees its column.
		// The comparator never reports equality, so the search always lands
		// on the boundary between finished and running spans.
		done := array.InsertionPoint(array.BSearchFunc(active, span.Start,
			func(a activeSpan) time.Time { return a.end },
			func(end, start time.Time) int {
				if end.After(start) {
					return 1
				}
				return -1
			}))
		for _, a := range active[:done] {
			free = array.Insert(free, a.column, array.NumAsc[int])
		}
		active = active[done:]

		if len(active) == 0 && len(members) > 0 {
			closeGroup()
		}

		column := columns
		if len(free) > 0 {
			column = free[0]
			free = free[1:]
		} else {
			columns++
		}

		v := TopHeightByTime(span.Start, span.End, minTime, maxTime)
		placements[idx] = Placement{
			Index:  idx,
			Group:  group,
			Column: column,
			Top:    v.Top,
			Height: v.Height,
		}
		members = append(members, idx)
		active = array.InsertFunc(active, activeSpan{end: span.End, column: column},
			func(a activeSpan) time.Time { return a.end }, compareTime)
	}
	closeGroup()

	for i := range placements {
		pl := &placements[i]
		pl.Width = Ratio(float64(pl.Columns), 100, 1)
		pl.Left = Ratio(float64(pl.Columns), 100, float64(pl.Column))
	}
	return placements
}

func compareSpans(a, b Span) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	// longer first
	return b.End.Compare(a.End)
}
