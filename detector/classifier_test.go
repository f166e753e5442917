package detector

import "testing"

func TestIsMarkerPixel(t *testing.T) {
	th := DefaultThresholds()
	th.normalize()

	tests := []struct {
		name     string
		r, g, b  uint8
		expected bool
	}{
		{"pure red", 255, 0, 0, true},
		{"badge red", 220, 30, 30, true},
		{"dark red below value floor", 100, 0, 0, false},
		{"washed out pink", 200, 150, 150, false},
		{"green", 0, 200, 0, false},
		{"blue", 0, 0, 200, false},
		{"orange outside hue band", 255, 120, 0, false},
		{"magenta outside hue band", 255, 0, 120, false},
		{"near-red toward orange", 255, 50, 0, true},
		{"near-red toward magenta", 255, 0, 50, true},
		{"white", 255, 255, 255, false},
		{"black", 0, 0, 0, false},
		{"gray", 128, 128, 128, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.isMarkerPixel(tt.r, tt.g, tt.b); got != tt.expected {
				t.Errorf("isMarkerPixel(%d, %d, %d) = %v, expected %v",
					tt.r, tt.g, tt.b, got, tt.expected)
			}
		})
	}
}

// Any pixel whose brightest channel sits below the value floor must fail,
// whatever its hue or saturation.
func TestClassifierValueFloor(t *testing.T) {
	th := DefaultThresholds()
	th.normalize()

	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				maxC := r
				if g > maxC {
					maxC = g
				}
				if b > maxC {
					maxC = b
				}
				if maxC >= int(th.MinValue) {
					continue
				}
				if th.isMarkerPixel(uint8(r), uint8(g), uint8(b)) {
					t.Fatalf("isMarkerPixel(%d, %d, %d) = true with max channel %d below floor %d",
						r, g, b, maxC, th.MinValue)
				}
			}
		}
	}
}

// The integer hue inequality must agree with the analytic band edge: for a
// red-dominant pixel, hue = 60*(g-b)/delta degrees, so the 15-degree edge is
// exactly diff*4 == delta.
func TestClassifierHueBandEdge(t *testing.T) {
	th := DefaultThresholds()
	th.normalize()

	// r=240, b=0, delta=240: g=60 sits exactly on 15 degrees, g=61 just past.
	if !th.isMarkerPixel(240, 60, 0) {
		t.Error("pixel exactly on the 15-degree hue edge should qualify")
	}
	if th.isMarkerPixel(240, 61, 0) {
		t.Error("pixel just past the 15-degree hue edge should not qualify")
	}
	// Mirror side of the band (hue just under 360).
	if !th.isMarkerPixel(240, 0, 60) {
		t.Error("pixel exactly on the 345-degree hue edge should qualify")
	}
	if th.isMarkerPixel(240, 0, 61) {
		t.Error("pixel just past the 345-degree hue edge should not qualify")
	}
}
