package slingshot

import "iter"

// FirstOverlap returns the first candidate whose live bounds overlap r, or
// nil. Candidates are visited in the order yielded, so when several overlap in
// the same frame only the earliest one is reported.
func FirstOverlap(r Rect, candidates iter.Seq[*Target]) *Target {
	for t := range candidates {
		if r.Overlaps(t.Bounds()) {
			return t
		}
	}
	return nil
}
