package gridlayout

// Track describes one column or row of a Grid. A Size track is fixed; all
// others share the leftover space in proportion to Fraction, clamped between
// Min and Max.
type Track struct {
	Name     string
	Size     int // fixed cells, 0 for flexible
	Fraction int // weight among flexible tracks, defaults to 1
	Min      int
	Max      int // 0 for unbounded
}

func (t Track) fraction() int {
	if t.Fraction <= 0 {
		return 1
	}
	return t.Fraction
}

func (t Track) min() int {
	if t.Min <= 0 {
		return 1
	}
	return t.Min
}

// resolveSizes distributes space across the tracks. Fixed tracks take their
// size; flexible tracks split the remainder by fraction. A flexible track
// squeezed under its minimum is pinned there and the rest are resolved
// again without it.
func resolveSizes(space int, tracks []Track) []int {
	sizes := make([]int, len(tracks))
	pinned := make([]bool, len(tracks))

	fixed := 0
	for i, t := range tracks {
		if t.Size > 0 {
			sizes[i] = t.Size
			pinned[i] = true
			fixed += t.Size
		}
	}

	for {
		remaining := space - fixed
		totalFraction := 0
		for i, t := range tracks {
			if !pinned[i] {
				totalFraction += t.fraction()
			}
		}
		if totalFraction == 0 {
			return sizes
		}

		portion := float64(remaining) / float64(totalFraction)
		underMin := false
		for i, t := range tracks {
			if pinned[i] {
				continue
			}
			if int(portion*float64(t.fraction())) < t.min() {
				sizes[i] = t.min()
				pinned[i] = true
				fixed += t.min()
				underMin = true
			}
		}
		if underMin {
			continue
		}

		// Hand out whole cells, carrying the fractional error so the
		// total comes out exact.
		var err float64
		for i, t := range tracks {
			if pinned[i] {
				continue
			}
			exact := portion*float64(t.fraction()) + err
			size := int(exact)
			err = exact - float64(size)
			sizes[i] = size
		}
		return sizes
	}
}

// trackSpan is one resolved instance of a track. With row repeat a track can
// appear several times, each instance getting its own grid index.
type trackSpan struct {
	track      int // index into the track list
	start, end int
}

// resolveSpans turns tracks into positioned instances. With repeat the
// tracks cycle until they fill the space.
func resolveSpans(tracks []Track, space, gap int, repeat bool) []trackSpan {
	if len(tracks) == 0 || space <= 0 {
		return nil
	}
	sizes := resolveSizes(space-gap*(len(tracks)-1), tracks)
	for i, t := range tracks {
		if t.Max > 0 && sizes[i] > t.Max {
			sizes[i] = t.Max
		}
	}

	var spans []trackSpan
	total := 0
	for index := 0; ; index++ {
		if index >= len(tracks) {
			if !repeat {
				break
			}
			if total+sizes[index%len(tracks)] >= space {
				break
			}
		}
		size := sizes[index%len(tracks)]
		spans = append(spans, trackSpan{
			track: index % len(tracks),
			start: total,
			end:   total + size,
		})
		total += size + gap
	}
	return spans
}
