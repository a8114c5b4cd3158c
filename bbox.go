package rtree

import "math"

// Dims is the number of dimensions of every rectangle stored in the tree.
const Dims = 2

// Rect is an axis-aligned bounding box. The first Dims values are the minimum
// coordinates and the last Dims values are the maximum coordinates, e.g.
// {xmin, ymin, xmax, ymax} for two dimensions.
type Rect [2 * Dims]float64

// Undefined returns the empty rectangle. Combining it with any other
// rectangle gives the other rectangle unchanged.
func Undefined() Rect {
	var r Rect
	r[0] = 1
	r[Dims] = -1
	return r
}

// NewRect creates a rectangle from its minimum and maximum corners.
func NewRect(min, max [Dims]float64) Rect {
	var r Rect
	copy(r[:Dims], min[:])
	copy(r[Dims:], max[:])
	return r
}

// PointRect creates a zero volume rectangle that covers a single point.
func PointRect(p [Dims]float64) Rect {
	return NewRect(p, p)
}

// Min returns the minimum coordinate along axis i.
func (r Rect) Min(i int) float64 { return r[i] }

// Max returns the maximum coordinate along axis i.
func (r Rect) Max(i int) float64 { return r[Dims+i] }

// IsUndefined reports whether r is the empty rectangle.
func (r Rect) IsUndefined() bool {
	return r[0] > r[Dims]
}

// Valid reports whether the minimum is no greater than the maximum along
// every axis. Only valid rectangles may be inserted.
func (r Rect) Valid() bool {
	for i := 0; i < Dims; i++ {
		if !(r[i] <= r[Dims+i]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether r and s share at least one point. Touching
// boundaries count as overlap.
func (r Rect) Overlaps(s Rect) bool {
	return overlap(r, s)
}

// unitSphereVolumes holds the volume of the unit sphere indexed by dimension.
var unitSphereVolumes = [...]float64{
	0.000000, 2.000000, 3.141593, 4.188790, 4.934802, 5.263789, 5.167713,
	4.724766, 4.058712, 3.298509, 2.550164, 1.884104, 1.335263, 0.910629,
	0.599265, 0.381443, 0.235331, 0.140981, 0.082146, 0.046622, 0.025807,
}

// Fails to compile if Dims has no precomputed unit sphere volume.
const _ = uint(len(unitSphereVolumes) - 1 - Dims)

// combine gives the smallest rectangle containing both r1 and r2.
func combine(r1, r2 Rect) Rect {
	if r1.IsUndefined() {
		return r2
	}
	if r2.IsUndefined() {
		return r1
	}
	var out Rect
	for i := 0; i < Dims; i++ {
		out[i] = math.Min(r1[i], r2[i])
		out[Dims+i] = math.Max(r1[Dims+i], r2[Dims+i])
	}
	return out
}

func overlap(r1, r2 Rect) bool {
	for i := 0; i < Dims; i++ {
		if r1[i] > r2[Dims+i] || r2[i] > r1[Dims+i] {
			return false
		}
	}
	return true
}

// sphericalVolume is the volume of the sphere whose bounding box has the same
// half extents as r. It is used in place of area for every placement and
// split decision.
func sphericalVolume(r Rect) float64 {
	if r.IsUndefined() {
		return 0
	}
	var sumOfSquares float64
	for i := 0; i < Dims; i++ {
		halfExtent := (r[Dims+i] - r[i]) / 2
		sumOfSquares += halfExtent * halfExtent
	}
	radius := math.Sqrt(sumOfSquares)
	return math.Pow(radius, Dims) * unitSphereVolumes[Dims]
}

// enlargement returns how much additional spherical volume the existing
// rectangle would gain to accommodate the additional one.
func enlargement(existing, additional Rect) float64 {
	return sphericalVolume(combine(existing, additional)) - sphericalVolume(existing)
}
