package detector

import "sort"

// ShapeBounds describes acceptable badge geometry: a small, roughly square
// or modestly wide, mostly-filled blob. Anything outside these bounds is an
// incidental red UI element, not a badge.
type ShapeBounds struct {
	MinPixels int     `yaml:"min_pixels"`
	MaxPixels int     `yaml:"max_pixels"`
	MinWidth  int     `yaml:"min_width"`
	MaxWidth  int     `yaml:"max_width"`
	MinHeight int     `yaml:"min_height"`
	MaxHeight int     `yaml:"max_height"`
	MinAspect float64 `yaml:"min_aspect"`
	MaxAspect float64 `yaml:"max_aspect"`
	// MinFill is the pixelCount/boxArea floor. Kept loose: the digits on a
	// badge punch holes in its colored area.
	MinFill float64 `yaml:"min_fill"`
}

func DefaultShapeBounds() ShapeBounds {
	return ShapeBounds{
		MinPixels: 20,
		MaxPixels: 3000,
		MinWidth:  5,
		MaxWidth:  60,
		MinHeight: 5,
		MaxHeight: 40,
		MinAspect: 0.5,
		MaxAspect: 3.0,
		MinFill:   0.35,
	}
}

func (s *ShapeBounds) normalize() {
	if *s == (ShapeBounds{}) {
		*s = DefaultShapeBounds()
	}
}

// Marker is the center of an accepted region in image coordinates.
type Marker struct {
	X, Y float64
}

// rowBand quantizes marker Y into horizontal rows for the reading-order
// sort. Markers within 20px vertically count as the same row.
const rowBand = 20

func (s *ShapeBounds) accept(r Region) bool {
	w, h := r.width(), r.height()
	if r.PixelCount < s.MinPixels || r.PixelCount > s.MaxPixels {
		return false
	}
	if w < s.MinWidth || w > s.MaxWidth {
		return false
	}
	if h < s.MinHeight || h > s.MaxHeight {
		return false
	}
	aspect := float64(w) / float64(h)
	if aspect < s.MinAspect || aspect > s.MaxAspect {
		return false
	}
	fill := float64(r.PixelCount) / float64(w*h)
	return fill >= s.MinFill
}

// filterRegions drops regions that do not look like badges and reduces the
// survivors to centers, sorted top-to-bottom then left-to-right so label
// assignment reads the way a human scans the window.
func filterRegions(regions []Region, bounds *ShapeBounds) []Marker {
	var markers []Marker
	for _, r := range regions {
		if !bounds.accept(r) {
			continue
		}
		markers = append(markers, Marker{
			X: float64(r.MinX+r.MaxX) / 2,
			Y: float64(r.MinY+r.MaxY) / 2,
		})
	}
	sort.SliceStable(markers, func(i, j int) bool {
		ri := int(markers[i].Y) / rowBand
		rj := int(markers[j].Y) / rowBand
		if ri != rj {
			return ri < rj
		}
		return markers[i].X < markers[j].X
	})
	return markers
}
