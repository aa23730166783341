// Package collision provides axis-aligned boxes and discrete overlap tests.
//
// Tests are evaluated once per frame on current positions; nothing here
// sweeps motion between frames, so a fast sphere can pass through a thin box
// between two checks.
package collision

import "github.com/Faultbox/hoopshot/pkg/math"

// AABB represents an axis-aligned bounding box.
// Flat boxes (Min == Max on an axis) are valid and model planar obstacles.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two opposite corners, ordering each axis.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Offset returns a box whose corners are origin+lo and origin+hi.
func Offset(origin, lo, hi math.Vec3) AABB {
	return NewAABB(origin.Add(lo), origin.Add(hi))
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ClosestPoint returns the point of the box nearest to p.
func (b AABB) ClosestPoint(p math.Vec3) math.Vec3 {
	return p.Clamp(b.Min, b.Max)
}

// SphereIntersects reports whether the sphere at center with the given
// radius overlaps the box. Touching (distance == radius) is not an overlap.
func (b AABB) SphereIntersects(center math.Vec3, radius float32) bool {
	return b.ClosestPoint(center).Distance(center) < radius
}
