package gold

import (
	"sync"

	"github.com/tomasz450/analityka/internal/dates"
)

// Session holds the currently displayed price series. The slot is replaced
// wholesale on a successful fetch and left untouched on any failure, so a
// failed refresh never clobbers what the user is looking at. The session is
// owned by the calling shell, never package state.
type Session struct {
	mu     sync.RWMutex
	rng    dates.DateRange
	points []PricePoint
	loaded bool
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Replace swaps in a freshly fetched series.
func (s *Session) Replace(rng dates.DateRange, points []PricePoint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng = rng
	s.points = points
	s.loaded = true
}

// Current returns the displayed range and series. ok is false until the
// first successful fetch.
func (s *Session) Current() (rng dates.DateRange, points []PricePoint, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rng, s.points, s.loaded
}
