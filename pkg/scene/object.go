package scene

import "github.com/df07/go-raycaster/pkg/core"

// Object type tags as they appear in scene files
const (
	KindCamera = "camera"
	KindSphere = "sphere"
	KindPlane  = "plane"
	KindEmpty  = ""
)

// Object is one entry of a scene. The concrete type is one of
// Camera, Sphere, Plane or Empty.
type Object interface {
	Kind() string
	sceneObject()
}

// Camera describes the view-plane extents in scene units
type Camera struct {
	Width  float64
	Height float64
}

// Sphere is a flat-colored sphere
type Sphere struct {
	Color    core.Vec3
	Position core.Vec3 // Center
	Radius   float64
}

// Plane is a flat-colored infinite plane
type Plane struct {
	Color    core.Vec3
	Position core.Vec3 // A point on the plane
	Normal   core.Vec3 // Not necessarily unit length
}

// Empty is an object literal that never had a type assigned ({} in the file)
type Empty struct{}

func (Camera) Kind() string { return KindCamera }
func (Sphere) Kind() string { return KindSphere }
func (Plane) Kind() string  { return KindPlane }
func (Empty) Kind() string  { return KindEmpty }

func (Camera) sceneObject() {}
func (Sphere) sceneObject() {}
func (Plane) sceneObject()  {}
func (Empty) sceneObject()  {}
