package hoops

import "github.com/Faultbox/hoopshot/internal/engine/collision"

// ScoreState counts baskets. AlreadyScored latches while the ball is in
// the score zone so a single pass scores once.
type ScoreState struct {
	Points        int
	AlreadyScored bool
}

// Check scores a point when the ball is inside zone and moving down, unless
// the latch is set. The latch clears once the ball leaves the zone.
// A score starts the ball's softening.
func (s *ScoreState) Check(p *Projectile, zone collision.AABB) bool {
	inside := p.Intersects(zone)

	scored := false
	if !s.AlreadyScored && inside && p.Velocity.Y < 0 {
		s.Points++
		s.AlreadyScored = true
		p.Soften()
		scored = true
	}

	if s.AlreadyScored && !inside {
		s.AlreadyScored = false
	}
	return scored
}

// Reset zeroes the points. The latch is kept so a ball still in the zone
// cannot score again on the next frame.
func (s *ScoreState) Reset() {
	s.Points = 0
}
