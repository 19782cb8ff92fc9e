package loaders

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// WriteScene writes s in the canonical form accepted by ParseScene.
// Numbers are written with the shortest representation that parses back
// to the same float64, so a written scene round-trips exactly.
func WriteScene(w io.Writer, s *scene.Scene) error {
	bw := bufio.NewWriter(w)

	if len(s.Objects) == 0 {
		bw.WriteString("[]\n")
		return bw.Flush()
	}

	bw.WriteString("[\n")
	for i, obj := range s.Objects {
		var ow objectWriter

		switch o := obj.(type) {
		case scene.Camera:
			ow.text("type", o.Kind())
			ow.number("width", o.Width)
			ow.number("height", o.Height)
		case scene.Sphere:
			ow.text("type", o.Kind())
			ow.vector("color", o.Color)
			ow.vector("position", o.Position)
			ow.number("radius", o.Radius)
		case scene.Plane:
			ow.text("type", o.Kind())
			ow.vector("color", o.Color)
			ow.vector("position", o.Position)
			ow.vector("normal", o.Normal)
		case scene.Empty:
		default:
			ow.err = fmt.Errorf("cannot write object of type %T", obj)
		}
		if ow.err != nil {
			return fmt.Errorf("object %d: %w", i, ow.err)
		}

		if len(ow.members) == 0 {
			bw.WriteString("  {}")
		} else {
			bw.WriteString("  {\n    ")
			bw.WriteString(strings.Join(ow.members, ",\n    "))
			bw.WriteString("\n  }")
		}
		if i < len(s.Objects)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")

	return bw.Flush()
}

// objectWriter collects the formatted members of one object.
// After the first error further calls are ignored.
type objectWriter struct {
	members []string
	err     error
}

func (ow *objectWriter) add(name, value string) {
	ow.members = append(ow.members, `"`+name+`": `+value)
}

func (ow *objectWriter) text(name, value string) {
	ow.add(name, `"`+value+`"`)
}

func (ow *objectWriter) number(name string, v float64) {
	if ow.err != nil {
		return
	}
	text, err := formatNumber(name, v)
	if err != nil {
		ow.err = err
		return
	}
	ow.add(name, text)
}

func (ow *objectWriter) vector(name string, v core.Vec3) {
	if ow.err != nil {
		return
	}
	var parts [3]string
	for i, c := range [3]float64{v.X, v.Y, v.Z} {
		text, err := formatNumber(name, c)
		if err != nil {
			ow.err = err
			return
		}
		parts[i] = text
	}
	ow.add(name, "["+strings.Join(parts[:], ", ")+"]")
}

func formatNumber(name string, v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%s: %v cannot be represented in a scene file", name, v)
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}
