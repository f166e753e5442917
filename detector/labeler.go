package detector

// Region is one connected component of badge-colored pixels, tracked as an
// axis-aligned bounding box (inclusive) plus the number of member pixels.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int
	PixelCount int
}

func (r Region) width() int  { return r.MaxX - r.MinX + 1 }
func (r Region) height() int { return r.MaxY - r.MinY + 1 }

// labeler extracts connected components from a mask. The flood-fill stack and
// label array are kept between calls so repeated detections on same-sized
// frames do not reallocate.
type labeler struct {
	labels []int32
	stack  []int32
}

// label scans mask row-major and flood-fills each unlabeled set pixel into a
// Region. Connectivity is 4-directional; components touching only at corners
// stay separate. Regions come back in discovery order (top-to-bottom,
// left-to-right by first pixel), which is also label order.
func (l *labeler) label(mask []uint8, width, height int) []Region {
	n := width * height
	if cap(l.labels) < n {
		l.labels = make([]int32, n)
	} else {
		l.labels = l.labels[:n]
		clear(l.labels)
	}
	if l.stack == nil {
		l.stack = make([]int32, 0, 1024)
	}

	var regions []Region
	next := int32(0)

	for y := 0; y < height; y++ {
		rowBase := y * width
		for x := 0; x < width; x++ {
			idx := rowBase + x
			if mask[idx] == 0 || l.labels[idx] != 0 {
				continue
			}
			next++
			regions = append(regions, l.fill(mask, width, height, int32(idx), next))
		}
	}
	return regions
}

// fill grows one component from seed with an explicit stack. Recursion is
// off the table here: a single large badge-colored area can span thousands
// of pixels and would overflow the call stack.
func (l *labeler) fill(mask []uint8, width, height int, seed, id int32) Region {
	sx := int(seed) % width
	sy := int(seed) / width
	reg := Region{MinX: sx, MinY: sy, MaxX: sx, MaxY: sy}

	l.stack = l.stack[:0]
	l.stack = append(l.stack, seed)
	l.labels[seed] = id

	for len(l.stack) > 0 {
		idx := l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]

		x := int(idx) % width
		y := int(idx) / width
		reg.PixelCount++
		if x < reg.MinX {
			reg.MinX = x
		}
		if x > reg.MaxX {
			reg.MaxX = x
		}
		if y < reg.MinY {
			reg.MinY = y
		}
		if y > reg.MaxY {
			reg.MaxY = y
		}

		if x > 0 {
			l.push(mask, idx-1, id)
		}
		if x < width-1 {
			l.push(mask, idx+1, id)
		}
		if y > 0 {
			l.push(mask, idx-int32(width), id)
		}
		if y < height-1 {
			l.push(mask, idx+int32(width), id)
		}
	}
	return reg
}

func (l *labeler) push(mask []uint8, idx, id int32) {
	if mask[idx] != 0 && l.labels[idx] == 0 {
		l.labels[idx] = id
		l.stack = append(l.stack, idx)
	}
}
