package derive

import (
	"sort"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/sheets"
)

// OthersStack is the synthetic catch-all column for segments outside the
// top set.
const OthersStack = "Others"

// pivotTopSegments is how many globally-highest segments get a named column.
const pivotTopSegments = 5

// pivotPalette assigns stack colors by column position, so colors stay
// stable across refreshes as long as the top segment set is unchanged.
var pivotPalette = []string{"#2dd4bf", "#3b82f6", "#f59e0b", "#a855f7", "#ec4899", "#64748b"}

// CountrySegmentGP pivots gross-profit records into one row per country and
// one column per top-5 global segment plus Others. Records with an unset
// segment are excluded; every remaining GP value lands in exactly one
// column, so row totals conserve the input sum. Rows come back sorted
// descending by total.
func CountrySegmentGP(records []domain.GPRecord) domain.CountrySegmentPivot {
	withSegment := make([]domain.GPRecord, 0, len(records))
	for _, rec := range records {
		if rec.Segment == "" || rec.Segment == sheets.Sentinel {
			continue
		}
		withSegment = append(withSegment, rec)
	}

	// Global GP per segment decides which segments get their own stack.
	top := TopSegmentsByGP(withSegment, pivotTopSegments)
	stacks := make([]string, 0, len(top)+1)
	named := make(map[string]struct{}, len(top))
	for _, seg := range top {
		stacks = append(stacks, seg.Segment)
		named[seg.Segment] = struct{}{}
	}
	stacks = append(stacks, OthersStack)

	colors := make(map[string]string, len(stacks))
	for i, stack := range stacks {
		colors[stack] = pivotPalette[i%len(pivotPalette)]
	}

	byCountry := make(map[string]*domain.PivotRow)
	var countries []string
	for _, rec := range withSegment {
		row, ok := byCountry[rec.Country]
		if !ok {
			row = &domain.PivotRow{Country: rec.Country, Values: make(map[string]float64, len(stacks))}
			for _, stack := range stacks {
				row.Values[stack] = 0
			}
			byCountry[rec.Country] = row
			countries = append(countries, rec.Country)
		}

		stack := OthersStack
		if _, ok := named[rec.Segment]; ok {
			stack = rec.Segment
		}
		row.Values[stack] += rec.GP
		row.Total += rec.GP
	}

	rows := make([]domain.PivotRow, 0, len(countries))
	for _, country := range countries {
		rows = append(rows, *byCountry[country])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })

	return domain.CountrySegmentPivot{Stacks: stacks, Colors: colors, Rows: rows}
}
