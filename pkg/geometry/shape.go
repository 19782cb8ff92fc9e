package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Shape is a flat-colored surface that can be intersected by a ray
type Shape interface {
	// Intersect returns the ray parameter of the nearest non-negative hit
	Intersect(ray core.Ray) (float64, bool)
	// Color returns the surface color with channels in [0, 1]
	Color() core.Vec3
}
