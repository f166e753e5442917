package detector

// mergeRegions coalesces regions whose bounding boxes come within gap pixels
// of each other. A badge with digits on it fragments into several components
// (the glyph strokes cut the colored background apart); those fragments sit
// a pixel or two apart and must be reunited into one region before shape
// filtering.
//
// Two regions merge when box A expanded by gap on every side overlaps box B,
// tested per axis. Merging repeats until a full pass makes no change, so the
// relation is transitive regardless of input order. Quadratic per pass, fine
// for the tens of regions a frame produces.
func mergeRegions(regions []Region, gap int) []Region {
	if len(regions) < 2 {
		return regions
	}

	out := append([]Region(nil), regions...)
	for {
		merged := false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if !near(out[i], out[j], gap) {
					continue
				}
				out[i] = union(out[i], out[j])
				out = append(out[:j], out[j+1:]...)
				j--
				merged = true
			}
		}
		if !merged {
			return out
		}
	}
}

func near(a, b Region, gap int) bool {
	if a.MinX-gap > b.MaxX || b.MinX > a.MaxX+gap {
		return false
	}
	if a.MinY-gap > b.MaxY || b.MinY > a.MaxY+gap {
		return false
	}
	return true
}

func union(a, b Region) Region {
	if b.MinX < a.MinX {
		a.MinX = b.MinX
	}
	if b.MinY < a.MinY {
		a.MinY = b.MinY
	}
	if b.MaxX > a.MaxX {
		a.MaxX = b.MaxX
	}
	if b.MaxY > a.MaxY {
		a.MaxY = b.MaxY
	}
	a.PixelCount += b.PixelCount
	return a
}
