package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point   core.Vec3 // A point on the plane
	Normal  core.Vec3 // Unit normal, zero if the given normal was degenerate
	Surface core.Vec3 // Flat color
}

// NewPlane creates a new plane
func NewPlane(point, normal, color core.Vec3) *Plane {
	return &Plane{
		Point:   point,
		Normal:  normal.Normalize(), // Ensure normal is normalized
		Surface: color,
	}
}

// Color returns the plane's flat color
func (p *Plane) Color() core.Vec3 {
	return p.Surface
}

// Intersect solves t = n·(p - o) / n·d. Parallel rays and hits behind the
// origin report no hit.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if denominator == 0 {
		return 0, false
	}

	t := p.Normal.Dot(p.Point.Subtract(ray.Origin)) / denominator
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	return t, true
}
