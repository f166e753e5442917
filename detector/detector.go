// Package detector finds notification badges in a captured window frame.
// The pipeline is fixed: per-pixel color classification, connected-component
// labeling, fragment merging, shape filtering, then mapping the surviving
// centers into screen coordinates. One Detect call is a pure one-shot
// computation over a caller-owned buffer; nothing is retained or retried.
package detector

// Config carries the tunable constants of the pipeline. The zero value is
// normalized to DefaultConfig on first use.
type Config struct {
	Thresholds Thresholds  `yaml:"thresholds"`
	Shape      ShapeBounds `yaml:"shape"`
	// MergeGap is the pixel tolerance for reuniting badge fragments.
	MergeGap int `yaml:"merge_gap"`
}

func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		Shape:      DefaultShapeBounds(),
		MergeGap:   3,
	}
}

// Detector runs the badge pipeline. It reuses its mask and labeling scratch
// buffers across calls, so a single Detector must not be shared by
// concurrent Detect calls. The event loop owns exactly one.
type Detector struct {
	cfg     Config
	mask    []uint8
	labeler labeler
}

func New(cfg Config) *Detector {
	cfg.Thresholds.normalize()
	cfg.Shape.normalize()
	if cfg.MergeGap <= 0 {
		cfg.MergeGap = 3
	}
	return &Detector{cfg: cfg}
}

// Detect classifies buf, extracts badge-shaped regions, and returns their
// centers in screen coordinates, ordered top-to-bottom then left-to-right.
// An empty slice is a normal result, not an error. A degenerate buffer
// (zero dimensions, short stride or data) is an error for this call only.
func (d *Detector) Detect(buf *PixelBuffer, win Rect) ([]ScreenPoint, error) {
	if err := buf.validate(); err != nil {
		return nil, err
	}

	n := buf.Width * buf.Height
	if cap(d.mask) < n {
		d.mask = make([]uint8, n)
	}
	mask := d.mask[:n]

	buildMask(buf, &d.cfg.Thresholds, mask)
	regions := d.labeler.label(mask, buf.Width, buf.Height)
	regions = mergeRegions(regions, d.cfg.MergeGap)
	markers := filterRegions(regions, &d.cfg.Shape)
	return mapToScreen(markers, buf.Width, buf.Height, win), nil
}
