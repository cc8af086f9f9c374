package quote

// intervalSet tracks byte ranges already consumed by dialogue or
// multi-paragraph quote extraction so later passes skip them.
type intervalSet struct {
	spans [][2]int
}

// add records a half-open [start, end) range.
func (s *intervalSet) add(start, end int) {
	if end <= start {
		return
	}
	s.spans = append(s.spans, [2]int{start, end})
}

// contains reports whether pos falls inside any recorded range.
func (s *intervalSet) contains(pos int) bool {
	for _, sp := range s.spans {
		if pos >= sp[0] && pos < sp[1] {
			return true
		}
	}
	return false
}

// overlaps reports whether [start, end) intersects any recorded range.
func (s *intervalSet) overlaps(start, end int) bool {
	for _, sp := range s.spans {
		if start < sp[1] && end > sp[0] {
			return true
		}
	}
	return false
}
