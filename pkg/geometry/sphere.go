package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Surface core.Vec3 // Flat color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: color,
	}
}

// Color returns the sphere's flat color
func (s *Sphere) Color() core.Vec3 {
	return s.Surface
}

// Intersect returns the nearest non-negative root of the ray/sphere quadratic
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	if a == 0 {
		return 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	if root := (-b - sqrtD) / (2 * a); root >= 0 {
		return root, true
	}
	// Ray starts inside the sphere
	if root := (-b + sqrtD) / (2 * a); root >= 0 {
		return root, true
	}
	return 0, false
}
