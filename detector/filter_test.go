package detector

import "testing"

func TestShapeBoundsAccept(t *testing.T) {
	b := DefaultShapeBounds()

	tests := []struct {
		name     string
		region   Region
		expected bool
	}{
		{"typical badge", box(0, 0, 17, 15, 230), true},
		{"wide pill badge", box(0, 0, 29, 15, 400), true},
		{"too few pixels", box(0, 0, 5, 5, 10), false},
		{"too wide", box(0, 0, 70, 15, 900), false},
		{"too tall", box(0, 0, 17, 45, 700), false},
		{"too elongated", box(0, 0, 59, 11, 650), false},
		{"hollow outline", box(0, 0, 19, 19, 76), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.accept(tt.region); got != tt.expected {
				t.Errorf("accept(%+v) = %v, expected %v", tt.region, got, tt.expected)
			}
		})
	}
}

func TestShapeBoundsMaxPixels(t *testing.T) {
	b := DefaultShapeBounds()
	b.MaxPixels = 200
	if b.accept(box(0, 0, 17, 15, 230)) {
		t.Error("region over the pixel ceiling should be rejected")
	}
	if !b.accept(box(0, 0, 17, 15, 190)) {
		t.Error("region under the pixel ceiling should be accepted")
	}
}

// A region narrower than the minimum width never passes, no matter how the
// other metrics land.
func TestShapeBoundsMinWidthAlwaysRejects(t *testing.T) {
	b := DefaultShapeBounds()
	for height := 1; height <= 40; height++ {
		for count := 1; count <= 3*height; count++ {
			r := box(10, 10, 12, 10+height-1, count)
			if b.accept(r) {
				t.Fatalf("region of width 3 accepted: %+v", r)
			}
		}
	}
}

func TestFilterReadingOrder(t *testing.T) {
	// Same 20px row band sorts by X; different bands sort by band.
	regions := []Region{
		box(100, 50, 110, 60, 80), // second row, right of the 10,45 one
		box(10, 5, 20, 15, 80),    // first row
		box(10, 45, 20, 55, 80),   // second row, leftmost
		box(60, 8, 70, 18, 80),    // first row, right
	}
	markers := filterRegions(regions, &ShapeBounds{
		MinPixels: 20, MaxPixels: 3000,
		MinWidth: 5, MaxWidth: 60, MinHeight: 5, MaxHeight: 40,
		MinAspect: 0.5, MaxAspect: 3.0, MinFill: 0.35,
	})
	if len(markers) != 4 {
		t.Fatalf("expected 4 markers, got %d", len(markers))
	}
	wantX := []float64{15, 65, 15, 105}
	for i, m := range markers {
		if m.X != wantX[i] {
			t.Errorf("marker %d at X=%v, expected %v (order %v)", i, m.X, wantX[i], markers)
		}
	}
}

func TestFilterCenterIsBoxMidpoint(t *testing.T) {
	b := DefaultShapeBounds()
	markers := filterRegions([]Region{box(50, 50, 70, 70, 441)}, &b)
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	if markers[0].X != 60 || markers[0].Y != 60 {
		t.Errorf("center = (%v,%v), expected (60,60)", markers[0].X, markers[0].Y)
	}
}
