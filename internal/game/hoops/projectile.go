package hoops

import (
	"github.com/Faultbox/hoopshot/internal/engine/collision"
	"github.com/Faultbox/hoopshot/pkg/curve"
	"github.com/Faultbox/hoopshot/pkg/math"
)

// Phase is the motion mode of the ball.
type Phase uint8

const (
	PhaseAtRest Phase = iota
	PhaseGuidedArc
	PhaseFreeFlight
)

func (p Phase) String() string {
	switch p {
	case PhaseAtRest:
		return "at_rest"
	case PhaseGuidedArc:
		return "guided_arc"
	case PhaseFreeFlight:
		return "free_flight"
	}
	return "unknown"
}

// Projectile is the ball. Radius never changes after creation.
type Projectile struct {
	Position math.Vec3
	Velocity math.Vec3
	Radius   float32
	Phase    Phase

	tuning Tuning

	// guided arc
	arc      []math.Vec3
	progress float32

	// post-score slowdown
	softening bool
	softened  float32
}

// Snapshot is the ball state after a step.
type Snapshot struct {
	Position math.Vec3
	Velocity math.Vec3
	Phase    Phase
	Bounced  bool // touched the floor and kept moving
	Landed   bool // touched the floor and came to rest
}

// NewProjectile creates a ball at rest at the origin.
func NewProjectile(t Tuning) Projectile {
	return Projectile{
		Radius: t.BallRadius,
		Phase:  PhaseAtRest,
		tuning: t,
	}
}

// Hold places a resting ball. Ignored while the ball is in the air.
func (p *Projectile) Hold(at math.Vec3) {
	if p.Phase == PhaseAtRest {
		p.Position = at
	}
}

// BeginThrow launches a resting ball from origin. A free throw flies along
// direction at LaunchSpeed; an assisted throw follows a quadratic Bezier arc
// whose apex is lifted ArcLift above the midpoint to hoopCenter.
// Returns false if the ball is already in the air.
func (p *Projectile) BeginThrow(assisted bool, origin, direction, hoopCenter math.Vec3) bool {
	if p.Phase != PhaseAtRest {
		return false
	}

	p.Position = origin
	p.Velocity = math.Vec3{}
	p.softening = false

	if assisted {
		if arc := guidedArc(origin, hoopCenter, p.tuning.ArcLift, p.tuning.ArcSamples); len(arc) >= 2 {
			p.arc = arc
			p.progress = 0
			p.Phase = PhaseGuidedArc
			return true
		}
	}

	p.Velocity = direction.Normalize().Scale(p.tuning.LaunchSpeed)
	p.Phase = PhaseFreeFlight
	return true
}

// guidedArc samples the quadratic Bezier from start to end lifted by lift.
// Returns nil if the samples cannot be generated.
func guidedArc(start, end math.Vec3, lift float32, samples int) []math.Vec3 {
	mid := start.Add(end).Scale(0.5).Add(math.Vec3{Y: lift})

	c := curve.New(curve.Bezier)
	c.SetControlPoints([]math.Vec3{start, mid, end})
	if err := c.GenerateQuadraticCurve(samples); err != nil {
		return nil
	}
	return c.Points()
}

// Step advances the ball by dt seconds: motion for the current phase,
// then post-score softening, then floor contact.
func (p *Projectile) Step(dt float32) Snapshot {
	switch p.Phase {
	case PhaseGuidedArc:
		p.followArc(dt)
	case PhaseFreeFlight:
		p.Velocity.Y -= p.tuning.Gravity * dt
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
	}

	p.ApplySoftening(dt)

	var bounced, landed bool
	if p.Phase != PhaseAtRest && p.Position.Y < p.tuning.GroundY {
		landed = p.ResolveGround()
		bounced = !landed
	}

	snap := p.Snapshot()
	snap.Bounced = bounced
	snap.Landed = landed
	return snap
}

// followArc moves the ball along the sampled arc. When progress reaches 1
// the ball leaves the arc along its final direction, slowed by ArcExitDamping.
func (p *Projectile) followArc(dt float32) {
	p.progress += dt * p.tuning.ArcSpeed

	n := len(p.arc)
	if p.progress >= 1 {
		dir := p.arc[n-1].Sub(p.arc[n-2]).Normalize()
		p.Velocity = dir.Scale(p.tuning.LaunchSpeed * p.tuning.ArcExitDamping)
		p.Phase = PhaseFreeFlight
		p.arc = nil
		return
	}

	f := p.progress * float32(n-1)
	i := int(f)
	if i < n-1 {
		p.Position = p.arc[i].Lerp(p.arc[i+1], f-float32(i))
	}
}

// ResolveGround handles floor contact: the ball is put back on the floor,
// bounces with GroundBounce and loses GroundFriction horizontally. Returns
// true if the remaining speed is below RestSpeed and the ball came to rest.
func (p *Projectile) ResolveGround() bool {
	p.Position.Y = p.tuning.GroundY
	p.Velocity.Y *= -p.tuning.GroundBounce
	p.Velocity.X *= p.tuning.GroundFriction
	p.Velocity.Z *= p.tuning.GroundFriction

	if p.Velocity.Length() >= p.tuning.RestSpeed {
		return false
	}

	p.Phase = PhaseAtRest
	p.Velocity = math.Vec3{}
	p.arc = nil
	p.softening = false
	return true
}

// Soften starts the post-score slowdown.
func (p *Projectile) Soften() {
	p.softening = true
	p.softened = 0
}

// ApplySoftening scales the velocity by SoftenFactor while the post-score
// slowdown runs and advances its timer by dt.
func (p *Projectile) ApplySoftening(dt float32) {
	if !p.softening {
		return
	}
	p.softened += dt
	p.Velocity = p.Velocity.Scale(p.tuning.SoftenFactor)
	if p.softened >= p.tuning.SoftenDuration {
		p.softening = false
	}
}

// Softening reports whether the post-score slowdown is running.
func (p *Projectile) Softening() bool {
	return p.softening
}

// CheckCollision reflects the ball off the first volume it touches, damps
// its speed and nudges it out along the volume normal. Only one volume is
// resolved per call. Only a ball in free flight collides; the guided arc
// owns the position and carries no velocity to reflect.
func (p *Projectile) CheckCollision(volumes []Volume) (Volume, bool) {
	if p.Phase != PhaseFreeFlight {
		return Volume{}, false
	}
	for _, v := range volumes {
		if !v.Box.SphereIntersects(p.Position, p.Radius) {
			continue
		}
		p.Velocity = p.Velocity.Reflect(v.Normal).Scale(p.tuning.ObstacleDamping)
		p.Position = p.Position.Add(v.Normal.Scale(p.tuning.ObstacleNudge))
		return v, true
	}
	return Volume{}, false
}

// Intersects reports whether the ball touches box.
func (p *Projectile) Intersects(box collision.AABB) bool {
	return box.SphereIntersects(p.Position, p.Radius)
}

// Snapshot returns the current ball state.
func (p *Projectile) Snapshot() Snapshot {
	return Snapshot{
		Position: p.Position,
		Velocity: p.Velocity,
		Phase:    p.Phase,
	}
}
