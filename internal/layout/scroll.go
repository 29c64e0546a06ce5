package layout

const (
	// PageSize doubles as the visible viewport height.
	PageSize = 500
	LineStep = 20
)

type ScrollAction int

const (
	ScrollLineUp ScrollAction = iota
	ScrollLineDown
	ScrollPageUp
	ScrollPageDown
	// ScrollTrack moves to an absolute position (thumb drag).
	ScrollTrack
)

func (a ScrollAction) String() string {
	switch a {
	case ScrollLineUp:
		return "line_up"
	case ScrollLineDown:
		return "line_down"
	case ScrollPageUp:
		return "page_up"
	case ScrollPageDown:
		return "page_down"
	case ScrollTrack:
		return "track"
	default:
		return "unknown"
	}
}

// Scroller owns the vertical scroll offset of the list view.
type Scroller struct {
	offset int
}

func (s *Scroller) Offset() int {
	return s.offset
}

// Apply moves the offset for one gesture and clamps it into [0, contentHeight].
// trackPos is only read for ScrollTrack. It reports whether the offset moved.
func (s *Scroller) Apply(action ScrollAction, trackPos, contentHeight int) bool {
	next := s.offset
	switch action {
	case ScrollLineUp:
		next -= LineStep
	case ScrollLineDown:
		next += LineStep
	case ScrollPageUp:
		next -= PageSize
	case ScrollPageDown:
		next += PageSize
	case ScrollTrack:
		next = trackPos
	}

	next = ClampOffset(next, contentHeight)
	changed := next != s.offset
	s.offset = next
	return changed
}

// Clamp re-applies the bounds after the content height changed.
func (s *Scroller) Clamp(contentHeight int) bool {
	next := ClampOffset(s.offset, contentHeight)
	changed := next != s.offset
	s.offset = next
	return changed
}

func ClampOffset(offset, max int) int {
	if max < 0 {
		max = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
