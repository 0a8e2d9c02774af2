package obstacles

import "sort"

// yInterval is a half-open vertical interval [start, end) within one sweep strip.
type yInterval struct {
	start, end int
}

// mergeRegions rebuilds a Region list as a minimal rectangle decomposition of its
// union.
//
// Sweep-line over x: every left and right edge becomes a cut, consecutive cuts bound a
// vertical strip, and within each strip the y-intervals of the Regions spanning the
// whole strip are sorted and coalesced. One output Region is emitted per coalesced
// interval per strip, so the output never contains overlapping rectangles and merging
// the output again is a no-op at the coverage level.
//
// Cost is O(n²) in the input count: every strip rescans the full input. Fine at
// diagram-scale obstacle counts; this is the scalability ceiling of the package.
func mergeRegions(regions []Region) []Region {
	if len(regions) == 0 {
		return nil
	}

	cuts := make([]int, 0, len(regions)*2)
	seen := make(map[int]bool, len(regions)*2)
	for _, r := range regions {
		for _, x := range [2]int{r.X, r.X + r.Width()} {
			if !seen[x] {
				seen[x] = true
				cuts = append(cuts, x)
			}
		}
	}
	sort.Ints(cuts)

	var merged []Region
	var intervals []yInterval
	for i := 0; i < len(cuts)-1; i++ {
		x1, x2 := cuts[i], cuts[i+1]

		// Collect the vertical extents of every Region covering this whole strip.
		intervals = intervals[:0]
		for _, r := range regions {
			if r.X <= x1 && r.X+r.Width() >= x2 {
				intervals = append(intervals, yInterval{start: r.Y, end: r.Y + r.Height()})
			}
		}
		if len(intervals) == 0 {
			continue
		}

		// Coalesce overlapping or adjacent intervals. With half-open extents on an
		// integer grid, start <= end means the cells touch.
		sort.Slice(intervals, func(a, b int) bool {
			return intervals[a].start < intervals[b].start
		})
		acc := intervals[0]
		for _, iv := range intervals[1:] {
			if iv.start <= acc.end {
				if iv.end > acc.end {
					acc.end = iv.end
				}
				continue
			}
			merged = append(merged, stripRegion(x1, x2, acc))
			acc = iv
		}
		merged = append(merged, stripRegion(x1, x2, acc))
	}
	return merged
}

// stripRegion builds the output Region for one coalesced interval of one strip,
// leaving unit extents at the zero default so the interchange shape stays canonical.
func stripRegion(x1, x2 int, iv yInterval) Region {
	r := Region{X: x1, Y: iv.start}
	if w := x2 - x1; w != 1 {
		r.DX = w
	}
	if h := iv.end - iv.start; h != 1 {
		r.DY = h
	}
	return r
}
