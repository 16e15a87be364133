package gesture

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Edge identifies a side of the screen.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeLeft
	EdgeTop
	EdgeBottom
)

// String returns the config name of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeRight:
		return "right"
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

const (
	defaultEdgeMargin       = 2
	defaultSwipeMinDistance = 6
)

// EdgeSwipe recognizes a mouse drag that starts within Margin cells of Edge
// and travels at least MinDistance cells towards the opposite side.
type EdgeSwipe struct {
	Edge        Edge
	Margin      int
	MinDistance int

	mu       sync.Mutex
	tracking bool
	startX   int
	startY   int
}

// NewEdgeSwipe creates an EdgeSwipe with the default margin and distance.
func NewEdgeSwipe(edge Edge) *EdgeSwipe {
	return &EdgeSwipe{
		Edge:        edge,
		Margin:      defaultEdgeMargin,
		MinDistance: defaultSwipeMinDistance,
	}
}

// Recognize implements Recognizer.
func (s *EdgeSwipe) Recognize(ev tcell.Event, width, height int) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := mouse.Position()
	pressed := mouse.Buttons()&tcell.Button1 != 0

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tracking {
		if pressed && s.nearEdge(x, y, width, height) {
			s.tracking = true
			s.startX, s.startY = x, y
		}
		return false
	}

	if s.travelled(x, y) >= s.MinDistance {
		s.tracking = false
		return true
	}
	if !pressed {
		// Released before reaching the distance.
		s.tracking = false
	}
	return false
}

func (s *EdgeSwipe) nearEdge(x, y, width, height int) bool {
	switch s.Edge {
	case EdgeRight:
		return x >= width-s.Margin
	case EdgeLeft:
		return x < s.Margin
	case EdgeTop:
		return y < s.Margin
	case EdgeBottom:
		return y >= height-s.Margin
	}
	return false
}

// travelled returns the distance moved inwards from the start position.
func (s *EdgeSwipe) travelled(x, y int) int {
	switch s.Edge {
	case EdgeRight:
		return s.startX - x
	case EdgeLeft:
		return x - s.startX
	case EdgeTop:
		return y - s.startY
	case EdgeBottom:
		return s.startY - y
	}
	return 0
}

func (s *EdgeSwipe) String() string {
	return "mouse swipe in from the " + s.Edge.String() + " edge"
}
