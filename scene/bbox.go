package scene

import (
	"math"
	"sort"
)

// BoundingBox is the axis-aligned box spanning a Scene's point positions.
type BoundingBox struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the box's extent along each axis.
func (b BoundingBox) Size() [3]float32 {
	return [3]float32{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}

// BoundingBox computes the axis-aligned bounding box of s's positions. An
// empty scene returns the conventional (+Inf, -Inf) sentinel box (spec.md
// §3), which an uninitiated caller cannot mistake for a degenerate
// zero-sized box at the origin.
func (s *Scene) BoundingBox() BoundingBox {
	box := BoundingBox{
		Min: [3]float32{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))},
		Max: [3]float32{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))},
	}

	for i := 0; i+2 < len(s.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := s.Positions[i+axis]
			if v < box.Min[axis] {
				box.Min[axis] = v
			}
			if v > box.Max[axis] {
				box.Max[axis] = v
			}
		}
	}

	return box
}

// MedianVolume returns the median ellipsoid volume across all points,
// (4*pi/3) * median(exp(sx)*exp(sy)*exp(sz)), a robust (outlier-resistant)
// summary of how large the splats in the scene are (spec.md §3).
func (s *Scene) MedianVolume() float64 {
	if s.NumPoints == 0 {
		return 0
	}

	volumes := make([]float64, s.NumPoints)
	for i := 0; i < s.NumPoints; i++ {
		sx := float64(s.Scales[i*3])
		sy := float64(s.Scales[i*3+1])
		sz := float64(s.Scales[i*3+2])
		volumes[i] = math.Exp(sx) * math.Exp(sy) * math.Exp(sz)
	}

	sort.Float64s(volumes)

	mid := len(volumes) / 2
	median := volumes[mid]
	if len(volumes)%2 == 0 {
		median = (volumes[mid-1] + volumes[mid]) / 2
	}

	return (4.0 / 3.0) * math.Pi * median
}
