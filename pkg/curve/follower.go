package curve

import "github.com/Faultbox/hoopshot/pkg/math"

// Follower walks a curve's samples one per call, wrapping at the end.
// It reads the curve live, so regenerating the curve is picked up on the
// next call.
type Follower struct {
	curve *Curve
	index int
}

// NewFollower returns a follower positioned on the first sample of c.
func NewFollower(c *Curve) *Follower {
	return &Follower{curve: c}
}

// Index returns the sample the next call to Next will return.
func (f *Follower) Index() int {
	return f.index
}

// Next returns the current sample and advances by one.
func (f *Follower) Next() (math.Vec3, error) {
	p, err := f.Peek(0)
	if err != nil {
		return p, err
	}
	f.index = (f.index + 1) % f.curve.NumPoints()
	return p, nil
}

// Peek returns the sample offset steps ahead of the cursor, wrapping.
func (f *Follower) Peek(offset int) (math.Vec3, error) {
	n := f.curve.NumPoints()
	if n == 0 {
		return f.curve.Point(0)
	}
	i := ((f.index+offset)%n + n) % n
	return f.curve.Point(i)
}

// Reset moves the cursor back to the first sample.
func (f *Follower) Reset() {
	f.index = 0
}
