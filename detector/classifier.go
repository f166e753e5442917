package detector

// Thresholds tunes the per-pixel badge color test. Zero value is not useful;
// start from DefaultThresholds.
type Thresholds struct {
	// MinValue is the brightness floor: max(R,G,B) must reach it (0-255).
	MinValue uint8 `yaml:"min_value"`
	// MinSaturation is the HSV saturation floor (0.0-1.0).
	MinSaturation float64 `yaml:"min_saturation"`

	// minSatScaled caches round(MinSaturation*255) so the hot loop stays
	// in integer arithmetic. Filled by normalize.
	minSatScaled int
}

// DefaultThresholds matches badges as rendered by mainstream desktop UIs:
// bright (V >= 128/255) and strongly saturated (S >= 0.60).
func DefaultThresholds() Thresholds {
	return Thresholds{MinValue: 128, MinSaturation: 0.60}
}

func (t *Thresholds) normalize() {
	if t.MinValue == 0 {
		t.MinValue = 128
	}
	if t.MinSaturation <= 0 || t.MinSaturation > 1 {
		t.MinSaturation = 0.60
	}
	t.minSatScaled = int(t.MinSaturation*255 + 0.5)
}

// isMarkerPixel reports whether an RGB triple is badge-colored: bright,
// saturated, red-dominant, with hue inside [0°,15°] ∪ [345°,360°].
//
// The hue band is tested without floats: for a red-dominant pixel the HSV hue
// is 60°*(g-b)/delta (mod 360°), so |hue| <= 15° reduces to |g-b|*4 <= delta.
// Saturation >= MinSaturation likewise reduces to delta*255 >= max*satScaled.
// No allocation, O(1), safe for a per-pixel loop.
func (t *Thresholds) isMarkerPixel(r, g, b uint8) bool {
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	if maxC < t.MinValue {
		return false
	}
	// Red must be the dominant channel. On ties hue leaves the near-red
	// band anyway (a red/green tie sits at 60°), so strict dominance is
	// the right test.
	if r < maxC || g == maxC || b == maxC {
		return false
	}

	minC := r
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}
	delta := int(maxC) - int(minC)
	if delta*255 < int(maxC)*t.minSatScaled {
		return false
	}

	diff := int(g) - int(b)
	if diff < 0 {
		diff = -diff
	}
	return diff*4 <= delta
}

// buildMask classifies every pixel of buf into mask (1 = badge-colored).
// mask must hold Width*Height bytes; it is written in full.
func buildMask(buf *PixelBuffer, t *Thresholds, mask []uint8) {
	for y := 0; y < buf.Height; y++ {
		row := buf.Pix[y*buf.Stride:]
		out := mask[y*buf.Width:]
		for x := 0; x < buf.Width; x++ {
			i := x * 4
			b, g, r := row[i], row[i+1], row[i+2]
			if t.isMarkerPixel(r, g, b) {
				out[x] = 1
			} else {
				out[x] = 0
			}
		}
	}
}
