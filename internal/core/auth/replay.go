package auth

import (
	"time"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// DefaultReplayWindow bounds how far a client timestamp may drift from the
// server clock, in either direction.
const DefaultReplayWindow = 30 * time.Second

// ReplayGuard validates client-supplied Unix timestamps against the server
// clock. It is stateless: timestamps are not remembered, so an identical
// request replayed inside the window still passes. This is a clock-skew
// filter, not full replay prevention, and it intentionally stays that way
// for compatibility with the deployed check-in devices.
type ReplayGuard struct {
	window time.Duration
	now    func() time.Time
}

// NewReplayGuard builds a guard with the given tolerance window. A zero or
// negative window falls back to DefaultReplayWindow.
func NewReplayGuard(window time.Duration) *ReplayGuard {
	if window <= 0 {
		window = DefaultReplayWindow
	}
	return &ReplayGuard{window: window, now: time.Now}
}

// Check accepts iff |now - ts| <= window (a skew of exactly the window is
// still fresh). Rejections map to domain.ErrReplayRejected.
func (g *ReplayGuard) Check(ts int64) error {
	diff := g.now().Unix() - ts
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(g.window/time.Second) {
		return domain.ErrReplayRejected
	}
	return nil
}
