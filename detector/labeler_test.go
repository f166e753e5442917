package detector

import "testing"

// maskFromRows builds a mask from a string picture, '#' = set.
func maskFromRows(rows []string) ([]uint8, int, int) {
	h := len(rows)
	w := len(rows[0])
	mask := make([]uint8, w*h)
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				mask[y*w+x] = 1
			}
		}
	}
	return mask, w, h
}

func TestLabelDiagonalBlobsStaySeparate(t *testing.T) {
	// Two 2x2 blobs touching only at one corner. Diagonal adjacency is not
	// connectivity, so they must come out as two regions.
	mask, w, h := maskFromRows([]string{
		"##....",
		"##....",
		"..##..",
		"..##..",
		"......",
	})

	var l labeler
	regions := l.label(mask, w, h)
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions for corner-touching blobs, got %d", len(regions))
	}
	for i, r := range regions {
		if r.PixelCount != 4 {
			t.Errorf("region %d: pixel count = %d, expected 4", i, r.PixelCount)
		}
	}
}

func TestLabelDiscoveryOrder(t *testing.T) {
	// Labels are assigned in raster-scan discovery order: top-to-bottom,
	// then left-to-right.
	mask, w, h := maskFromRows([]string{
		"......#.",
		"........",
		"#.....#.",
		"........",
	})

	var l labeler
	regions := l.label(mask, w, h)
	if len(regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(regions))
	}
	want := [][2]int{{6, 0}, {0, 2}, {6, 2}}
	for i, r := range regions {
		if r.MinX != want[i][0] || r.MinY != want[i][1] {
			t.Errorf("region %d discovered at (%d,%d), expected (%d,%d)",
				i, r.MinX, r.MinY, want[i][0], want[i][1])
		}
	}
}

func TestLabelBoundsAndCount(t *testing.T) {
	mask, w, h := maskFromRows([]string{
		".....",
		".###.",
		".#...",
		".###.",
		".....",
	})

	var l labeler
	regions := l.label(mask, w, h)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	r := regions[0]
	if r.MinX != 1 || r.MaxX != 3 || r.MinY != 1 || r.MaxY != 3 {
		t.Errorf("bounds = (%d,%d)-(%d,%d), expected (1,1)-(3,3)", r.MinX, r.MinY, r.MaxX, r.MaxY)
	}
	if r.PixelCount != 7 {
		t.Errorf("pixel count = %d, expected 7", r.PixelCount)
	}
	if r.PixelCount > r.width()*r.height() {
		t.Errorf("pixel count %d exceeds box area %d", r.PixelCount, r.width()*r.height())
	}
}

// A fully set mask is the pathological case for recursion; the explicit
// stack has to take it in stride.
func TestLabelFullMask(t *testing.T) {
	const w, h = 300, 300
	mask := make([]uint8, w*h)
	for i := range mask {
		mask[i] = 1
	}

	var l labeler
	regions := l.label(mask, w, h)
	if len(regions) != 1 {
		t.Fatalf("expected 1 region for a fully set mask, got %d", len(regions))
	}
	if regions[0].PixelCount != w*h {
		t.Errorf("pixel count = %d, expected %d", regions[0].PixelCount, w*h)
	}
}
