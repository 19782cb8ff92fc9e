package loaders

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Options controls scene parsing
type Options struct {
	MaxObjects int         // Object slot limit; <= 0 uses scene.DefaultMaxObjects
	Logger     core.Logger // Optional progress logger
}

// DefaultOptions returns the limits used by ParseScene
func DefaultOptions() Options {
	return Options{
		MaxObjects: scene.DefaultMaxObjects,
		Logger:     core.NopLogger{},
	}
}

// member is one "name": value pair of an object literal. Members are held
// until the object closes, because "type" may appear after the fields it governs.
type member struct {
	name   string
	line   int
	text   string
	number float64
	vector core.Vec3
}

// sceneReader holds the state of a single parse
type sceneReader struct {
	in   *charStream
	opts Options
}

// ParseScene reads a scene description from r using DefaultOptions.
//
// The accepted grammar is a JSON array of flat objects:
//
//	[ { "type": "camera", "width": 2, "height": 2 },
//	  { "type": "sphere", "color": [1, 0, 0], "position": [0, 0, 5], "radius": 1 } ]
//
// Commas between objects and between members are optional.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	return ParseSceneWithOptions(r, DefaultOptions())
}

// ParseSceneWithOptions reads a scene description from r
func ParseSceneWithOptions(r io.Reader, opts Options) (*scene.Scene, error) {
	if opts.MaxObjects <= 0 {
		opts.MaxObjects = scene.DefaultMaxObjects
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}

	reader := &sceneReader{
		in:   newCharStream(r),
		opts: opts,
	}
	objects, err := reader.readScene()
	if err != nil {
		return nil, err
	}

	opts.Logger.Printf("Parsed %d scene objects (%d lines)\n", len(objects), reader.in.line)
	return scene.New(objects...), nil
}

// LoadScene opens and parses a scene file
func LoadScene(filename string, opts Options) (*scene.Scene, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseSceneWithOptions(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// readScene reads the top level array
func (r *sceneReader) readScene() ([]scene.Object, error) {
	in := r.in
	if err := in.skipWhitespace(); err != nil {
		return nil, err
	}
	if err := in.expect('['); err != nil {
		return nil, err
	}
	if err := in.skipWhitespace(); err != nil {
		return nil, err
	}

	c, err := in.next()
	if err != nil {
		return nil, err
	}
	if c == ']' {
		return []scene.Object{}, nil
	}
	in.unread(c)

	objects := make([]scene.Object, 0)
	for {
		if err := in.skipWhitespace(); err != nil {
			return nil, err
		}
		if err := in.expect('{'); err != nil {
			return nil, err
		}
		if len(objects) >= r.opts.MaxObjects {
			return nil, in.errorf(ErrTooManyObjects, "(limit %d)", r.opts.MaxObjects)
		}

		obj, err := r.readObject()
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)

		// Separator between objects is optional, and may trail the last one
		if c, err = r.nextToken(); err != nil {
			return nil, err
		}
		if c == ',' {
			if c, err = r.nextToken(); err != nil {
				return nil, err
			}
		}
		switch c {
		case ']':
			return objects, nil
		case '{':
			in.unread(c)
		default:
			return nil, in.unexpected(c, "'{' or ']'")
		}
	}
}

// readObject reads the members of an object literal whose '{' was consumed
func (r *sceneReader) readObject() (scene.Object, error) {
	line := r.in.line
	var members []member

	c, err := r.nextToken()
	if err != nil {
		return nil, err
	}
	for c != '}' {
		r.in.unread(c)
		m, err := r.readMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)

		if c, err = r.nextToken(); err != nil {
			return nil, err
		}
		if c == ',' {
			if c, err = r.nextToken(); err != nil {
				return nil, err
			}
		}
	}

	return buildObject(members, line)
}

// readMember reads one "name": value pair. The value syntax is chosen by the name.
func (r *sceneReader) readMember() (member, error) {
	in := r.in
	m := member{line: in.line}

	name, err := in.readString()
	if err != nil {
		return m, err
	}
	m.name = name

	switch name {
	case "type", "width", "height", "radius", "color", "position", "normal":
	default:
		return m, in.errorf(ErrUnknownField, "%q", name)
	}

	if err := in.skipWhitespace(); err != nil {
		return m, err
	}
	if err := in.expect(':'); err != nil {
		return m, err
	}
	if err := in.skipWhitespace(); err != nil {
		return m, err
	}

	switch name {
	case "type":
		if m.text, err = in.readString(); err != nil {
			return m, err
		}
		switch m.text {
		case scene.KindCamera, scene.KindSphere, scene.KindPlane:
		default:
			return m, in.errorf(ErrUnknownObjectType, "%q", m.text)
		}
	case "width", "height", "radius":
		if m.number, err = in.readNumber(); err != nil {
			return m, err
		}
	case "color", "position", "normal":
		if m.vector, err = in.readVector(); err != nil {
			return m, err
		}
		if name == "color" && !m.vector.InRange(0, 1) {
			return m, in.errorf(ErrInvalidColorRange, "[%g, %g, %g]", m.vector.X, m.vector.Y, m.vector.Z)
		}
	}
	return m, nil
}

// nextToken skips whitespace and returns the following byte
func (r *sceneReader) nextToken() (byte, error) {
	if err := r.in.skipWhitespace(); err != nil {
		return 0, err
	}
	return r.in.next()
}

// buildObject applies buffered members once the object's type is known.
// A repeated member overwrites the earlier value.
func buildObject(members []member, line int) (scene.Object, error) {
	if len(members) == 0 {
		return scene.Empty{}, nil
	}

	kind := scene.KindEmpty
	for _, m := range members {
		if m.name == "type" {
			kind = m.text
		}
	}

	switch kind {
	case scene.KindCamera:
		var cam scene.Camera
		for _, m := range members {
			switch m.name {
			case "type":
			case "width":
				cam.Width = m.number
			case "height":
				cam.Height = m.number
			default:
				return nil, notAllowed(m, kind)
			}
		}
		return cam, nil

	case scene.KindSphere:
		var sphere scene.Sphere
		for _, m := range members {
			switch m.name {
			case "type":
			case "color":
				sphere.Color = m.vector
			case "position":
				sphere.Position = m.vector
			case "radius":
				sphere.Radius = m.number
			default:
				return nil, notAllowed(m, kind)
			}
		}
		return sphere, nil

	case scene.KindPlane:
		var plane scene.Plane
		for _, m := range members {
			switch m.name {
			case "type":
			case "color":
				plane.Color = m.vector
			case "position":
				plane.Position = m.vector
			case "normal":
				plane.Normal = m.vector
			default:
				return nil, notAllowed(m, kind)
			}
		}
		return plane, nil
	}

	return nil, &ParseError{Line: line, Kind: ErrMissingType, Detail: fmt.Sprintf("(first field %q)", members[0].name)}
}

func notAllowed(m member, kind string) error {
	return &ParseError{Line: m.line, Kind: ErrFieldNotAllowed, Detail: fmt.Sprintf("%q on %s", m.name, kind)}
}
