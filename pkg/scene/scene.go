package scene

import (
	"fmt"
	"io"
)

// DefaultMaxObjects is the object limit applied when none is configured
const DefaultMaxObjects = 128

// Scene is the ordered list of objects read from a scene file
type Scene struct {
	Objects []Object
}

// New creates a scene from the given objects
func New(objects ...Object) *Scene {
	return &Scene{Objects: objects}
}

// Len returns the number of object slots, including empty ones
func (s *Scene) Len() int {
	return len(s.Objects)
}

// Camera returns the first camera in the scene. Later cameras are ignored.
func (s *Scene) Camera() (Camera, bool) {
	for _, obj := range s.Objects {
		if cam, ok := obj.(Camera); ok {
			return cam, true
		}
	}
	return Camera{}, false
}

// Surfaces returns every object that can be hit by a ray, in file order
func (s *Scene) Surfaces() []Object {
	surfaces := make([]Object, 0, len(s.Objects))
	for _, obj := range s.Objects {
		switch obj.(type) {
		case Camera, Empty:
			continue
		}
		surfaces = append(surfaces, obj)
	}
	return surfaces
}

// Describe writes a human readable listing of the scene objects
func (s *Scene) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "- NUMBER OF OBJECTS: %d -\n\n", len(s.Objects)); err != nil {
		return err
	}
	for _, obj := range s.Objects {
		var err error
		switch o := obj.(type) {
		case Camera:
			_, err = fmt.Fprintf(w, "Type: %s\nWidth: %f\nHeight: %f\n\n", o.Kind(), o.Width, o.Height)
		case Sphere:
			_, err = fmt.Fprintf(w, "Type: %s\nRadius: %f\nColor: %f %f %f\nPosition: %f %f %f\n\n",
				o.Kind(), o.Radius,
				o.Color.X, o.Color.Y, o.Color.Z,
				o.Position.X, o.Position.Y, o.Position.Z)
		case Plane:
			_, err = fmt.Fprintf(w, "Type: %s\nColor: %f %f %f\nPosition: %f %f %f\nNormal: %f %f %f\n\n",
				o.Kind(),
				o.Color.X, o.Color.Y, o.Color.Z,
				o.Position.X, o.Position.Y, o.Position.Z,
				o.Normal.X, o.Normal.Y, o.Normal.Z)
		default:
			_, err = fmt.Fprint(w, "Type: Empty Object\nNo properties discovered\n\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
