package renderer

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// ViewPlane maps image pixels onto the camera's view plane, one unit
// in front of the origin along +Z.
type ViewPlane struct {
	origin  core.Vec3
	toPlane matrix.Matrix // pixel space -> view plane (x, y)
}

// NewViewPlane creates the pixel mapping for a camera and image size.
// The view plane is centered on the Z axis and image rows run downward,
// so the Y axis is flipped.
func NewViewPlane(cam scene.Camera, width, height int) ViewPlane {
	const centerX, centerY = 0.0, 0.0

	pixelWidth := cam.Width / float64(width)
	pixelHeight := cam.Height / float64(height)

	// Scale pixel units to scene units, then move pixel (0, 0) to the top left corner
	toPlane := matrix.Scale(pixelWidth, -pixelHeight).
		Mul(matrix.Translate(centerX-cam.Width/2, cam.Height/2-centerY))

	return ViewPlane{
		origin:  core.NewVec3(0, 0, 0),
		toPlane: toPlane,
	}
}

// PlanePoint returns the view-plane coordinates of the center of pixel (col, row)
func (vp ViewPlane) PlanePoint(col, row int) vec.Vec2 {
	x, y := vp.toPlane.Apply(float64(col)+0.5, float64(row)+0.5)
	return vec.Vec2{X: x, Y: y}
}

// GetRay returns the unit-direction ray through the center of pixel (col, row)
func (vp ViewPlane) GetRay(col, row int) core.Ray {
	p := vp.PlanePoint(col, row)
	direction := core.NewVec3(p.X, p.Y, 1).Normalize()
	return core.NewRay(vp.origin, direction)
}
