package obstacles

// Area is an occupancy region built from two independently merged Region lists: a
// positive (obstacle) channel and a negative (hole) channel. A cell is occupied when
// the positive channel covers it and the negative channel does not.
//
// Both channels are kept minimal: after every mutation no two Regions in a channel
// overlap, and re-merging a channel changes nothing at the coverage level. Minimality
// only keeps the rectangle lists small for consumers that read them; occupancy queries
// are correct without it.
//
// An Area is not safe for concurrent mutation. Queries against an Area that is no
// longer being mutated are safe from any number of goroutines.
type Area struct {
	positive []Region
	negative []Region
}

// NewArea returns an Area whose obstacle channel is seeded with the given Regions.
func NewArea(regions ...Region) *Area {
	a := &Area{}
	if len(regions) > 0 {
		a.Add(regions...)
	}
	return a
}

// Add merges regions into the obstacle channel and returns the Area for chaining.
// Adding geometry that is already covered leaves occupancy unchanged.
func (a *Area) Add(regions ...Region) *Area {
	a.positive = mergeRegions(append(a.positive, regions...))
	return a
}

// Subtract merges regions into the hole channel and returns the Area for chaining.
// Holes only mask the obstacle channel; subtracting where nothing is solid has no
// visible effect until something solid is added there.
func (a *Area) Subtract(regions ...Region) *Area {
	a.negative = mergeRegions(append(a.negative, regions...))
	return a
}

// IsOccupied reports whether the cell (x, y) is blocked: inside some positive Region
// and inside no negative Region.
func (a *Area) IsOccupied(x, y int) bool {
	return containsCell(a.positive, x, y) && !containsCell(a.negative, x, y)
}

// PositiveRegions returns a snapshot of the current minimal obstacle decomposition,
// for consumers that want rectangle-level geometry rather than per-cell queries.
func (a *Area) PositiveRegions() []Region {
	out := make([]Region, len(a.positive))
	copy(out, a.positive)
	return out
}

// Union returns a new Area combining both operands channel by channel: the positive
// channels merged together, and independently the negative channels. This is not full
// boolean algebra over shape-minus-holes regions; a hole from one operand can mask
// coverage the other operand meant to keep solid wherever their positive regions
// overlap. Callers needing true set union must resolve holes before combining.
func Union(a, b *Area) *Area {
	pos := make([]Region, 0, len(a.positive)+len(b.positive))
	pos = append(pos, a.positive...)
	pos = append(pos, b.positive...)
	neg := make([]Region, 0, len(a.negative)+len(b.negative))
	neg = append(neg, a.negative...)
	neg = append(neg, b.negative...)
	return &Area{
		positive: mergeRegions(pos),
		negative: mergeRegions(neg),
	}
}
