package renderer

import "time"

// RenderStats contains statistics about a render
type RenderStats struct {
	TotalPixels   int           // Pixels written
	HitPixels     int           // Pixels covered by some surface
	Intersections int           // Ray/surface tests performed
	Tiles         int           // Tiles rendered
	Workers       int           // Concurrent workers used
	Duration      time.Duration // Wall time of the render
}

// merge adds the per-tile counters of other into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.Intersections += other.Intersections
	s.Tiles += other.Tiles
}

// Coverage returns the fraction of pixels that hit a surface
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
