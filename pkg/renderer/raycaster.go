package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// DefaultTileSize is the edge length of a render tile in pixels
const DefaultTileSize = 64

var (
	// ErrNoCameraFound is returned when a scene has no camera object
	ErrNoCameraFound = errors.New("no camera found in scene")
	// ErrUnknownObject is returned for scene objects the raycaster cannot intersect
	ErrUnknownObject = errors.New("object type is not valid")
	// ErrInvalidDimensions is returned for non-positive image sizes
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
)

// Config contains rendering configuration
type Config struct {
	Width    int         // Image width in pixels
	Height   int         // Image height in pixels
	Workers  int         // Concurrent tile workers; <= 0 uses runtime.NumCPU()
	TileSize int         // Tile edge length; <= 0 uses DefaultTileSize
	Logger   core.Logger // Optional progress logger
}

// DefaultConfig returns sensible default values for the given image size
func DefaultConfig(width, height int) Config {
	return Config{
		Width:    width,
		Height:   height,
		Workers:  0,
		TileSize: DefaultTileSize,
		Logger:   core.NopLogger{},
	}
}

// Raycaster casts one ray per pixel and writes the flat color of the nearest surface
type Raycaster struct {
	scene  *scene.Scene
	config Config
}

// NewRaycaster creates a new raycaster for the scene
func NewRaycaster(s *scene.Scene, config Config) *Raycaster {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if config.Logger == nil {
		config.Logger = core.NopLogger{}
	}
	return &Raycaster{
		scene:  s,
		config: config,
	}
}

// Render casts every pixel of the image. The scene must contain a camera;
// nothing is written if it does not.
func (rc *Raycaster) Render(ctx context.Context) (*Image, RenderStats, error) {
	width, height := rc.config.Width, rc.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cam, ok := rc.scene.Camera()
	if !ok {
		return nil, RenderStats{}, ErrNoCameraFound
	}

	shapes, err := BuildShapes(rc.scene)
	if err != nil {
		return nil, RenderStats{}, err
	}

	viewPlane := NewViewPlane(cam, width, height)
	img := NewImage(width, height)
	tiles := NewTileGrid(width, height, rc.config.TileSize)
	pool := NewWorkerPool(rc.config.Workers)

	rc.config.Logger.Printf("Rendering %dx%d: %d surfaces, %d tiles, %d workers\n",
		width, height, len(shapes), len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	stats, err := pool.Run(ctx, tiles, func(tile Tile) (RenderStats, error) {
		return renderTile(tile, viewPlane, shapes, img), nil
	})
	if err != nil {
		return nil, RenderStats{}, err
	}
	stats.Duration = time.Since(startTime)

	rc.config.Logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, 100*stats.Coverage())
	return img, stats, nil
}

// BuildShapes converts every surface of the scene into an intersectable shape,
// keeping file order. Cameras and empty objects are skipped.
func BuildShapes(s *scene.Scene) ([]geometry.Shape, error) {
	surfaces := s.Surfaces()
	shapes := make([]geometry.Shape, 0, len(surfaces))
	for i, obj := range surfaces {
		switch o := obj.(type) {
		case scene.Sphere:
			shapes = append(shapes, geometry.NewSphere(o.Position, o.Radius, o.Color))
		case scene.Plane:
			shapes = append(shapes, geometry.NewPlane(o.Position, o.Normal, o.Color))
		default:
			return nil, fmt.Errorf("%w: surface %d (%T)", ErrUnknownObject, i, obj)
		}
	}
	return shapes, nil
}

// renderTile writes every pixel inside the tile bounds.
// Tiles are disjoint, so concurrent calls never touch the same pixel.
func renderTile(tile Tile, viewPlane ViewPlane, shapes []geometry.Shape, img *Image) RenderStats {
	stats := RenderStats{Tiles: 1}

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			ray := viewPlane.GetRay(x, y)
			shape, hit := closestHit(ray, shapes)
			stats.Intersections += len(shapes)
			stats.TotalPixels++

			if !hit {
				img.Set(x, y, Pixel{})
				continue
			}
			stats.HitPixels++
			img.Set(x, y, colorToPixel(shape.Color(), img.MaxColor))
		}
	}

	return stats
}

// closestHit returns the shape with the smallest positive t along the ray.
// On ties the earlier shape wins.
func closestHit(ray core.Ray, shapes []geometry.Shape) (geometry.Shape, bool) {
	var closest geometry.Shape
	closestSoFar := math.Inf(1)

	for _, shape := range shapes {
		if t, isHit := shape.Intersect(ray); isHit && t > 0 && t < closestSoFar {
			closestSoFar = t
			closest = shape
		}
	}

	return closest, closest != nil
}

// colorToPixel scales a [0, 1] color to integer channels, truncating
func colorToPixel(c core.Vec3, maxColor int) Pixel {
	c = c.Clamp(0.0, 1.0)
	scale := float64(maxColor)
	return Pixel{
		R: uint8(c.X * scale),
		G: uint8(c.Y * scale),
		B: uint8(c.Z * scale),
	}
}
