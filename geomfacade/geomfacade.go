// Package geomfacade is the engine's view of a geometry: a tagged variant
// over github.com/paulmach/orb's Point/LineString/Ring/Polygon/
// MultiLineString/MultiPolygon/Collection types, exposing exactly the
// operations the measurement dispatcher needs (dimension, part iteration,
// curve-to-line conversion, ring access, and planar length/area/perimeter
// for the no-ellipsoid fallback). This plays the role of the "abstract
// iterable geometry facade" the spec treats as an external collaborator —
// orb's Geometry interface already is that facade (a type-switchable
// interface rather than a class hierarchy with downcasts), so this package
// is mostly thin adapter code plus the planar formulas.
package geomfacade

import (
	"math"

	"github.com/paulmach/orb"
)

// Dimension reports the topological dimension the measurement dispatcher
// cares about: 1 for curves, 2 for surfaces, 0 otherwise. A Collection's
// dimension is that of its first part whose dimension is not 0.
func Dimension(g orb.Geometry) int {
	switch v := g.(type) {
	case orb.LineString, orb.Ring, orb.MultiLineString:
		return 1
	case orb.Polygon, orb.MultiPolygon:
		return 2
	case orb.Collection:
		for _, part := range v {
			if d := Dimension(part); d != 0 {
				return d
			}
		}
		return 0
	default:
		return 0
	}
}

// IsCollection reports whether g bundles multiple independently-measured
// parts.
func IsCollection(g orb.Geometry) bool {
	switch g.(type) {
	case orb.Collection, orb.MultiLineString, orb.MultiPolygon:
		return true
	default:
		return false
	}
}

// Parts returns the immediate children of a collection-like geometry, or a
// single-element slice containing g itself if it isn't one.
func Parts(g orb.Geometry) []orb.Geometry {
	switch v := g.(type) {
	case orb.Collection:
		return []orb.Geometry(v)
	case orb.MultiLineString:
		parts := make([]orb.Geometry, len(v))
		for i, ls := range v {
			parts[i] = ls
		}
		return parts
	case orb.MultiPolygon:
		parts := make([]orb.Geometry, len(v))
		for i, p := range v {
			parts[i] = p
		}
		return parts
	default:
		return []orb.Geometry{g}
	}
}

// CurveToLine segmentizes a curve-shaped geometry into a plain LineString.
// orb has no separate curved-segment representation, so this is an
// identity conversion for LineString/Ring; it reports ok=false for
// anything else, including a MultiLineString.
func CurveToLine(g orb.Geometry) (orb.LineString, bool) {
	switch v := g.(type) {
	case orb.LineString:
		return v, true
	case orb.Ring:
		return orb.LineString(v), true
	default:
		return nil, false
	}
}

// ExteriorRing returns a polygon's outer boundary.
func ExteriorRing(p orb.Polygon) orb.Ring {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// NumInteriorRings returns the number of holes in a polygon.
func NumInteriorRings(p orb.Polygon) int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// InteriorRing returns the i'th hole (0-based) of a polygon.
func InteriorRing(p orb.Polygon, i int) orb.Ring {
	return p[i+1]
}

// PlanarLength sums the Euclidean length of consecutive segments of a
// line, matching a curve's own length() when no ellipsoid is configured.
func PlanarLength(ls orb.LineString) float64 {
	total := 0.0
	for i := 1; i < len(ls); i++ {
		total += planarDistance(ls[i-1], ls[i])
	}
	return total
}

func planarDistance(a, b orb.Point) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// RingLength sums a ring's segment lengths plus its implicit closing
// segment back to the first vertex, per the data model's "first=last
// implicit" ring convention.
func RingLength(ring orb.Ring) float64 {
	n := len(ring)
	if n < 2 {
		return 0
	}
	total := PlanarLength(orb.LineString(ring))
	if ring[0] != ring[n-1] {
		total += planarDistance(ring[n-1], ring[0])
	}
	return total
}

// PlanarRingArea is the shoelace formula over a ring, always non-negative.
func PlanarRingArea(ring orb.Ring) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return math.Abs(area / 2)
}

// PlanarPolygonArea is the exterior ring's area minus the area of every
// hole, matching a surface's own area() when no ellipsoid is configured.
func PlanarPolygonArea(p orb.Polygon) float64 {
	if len(p) == 0 {
		return 0
	}
	area := PlanarRingArea(p[0])
	for _, hole := range p[1:] {
		area -= PlanarRingArea(hole)
	}
	if area < 0 {
		return 0
	}
	return area
}

// PlanarPerimeter sums the length of every ring (exterior and interior) of
// a polygon.
func PlanarPerimeter(p orb.Polygon) float64 {
	total := 0.0
	for _, ring := range p {
		total += RingLength(ring)
	}
	return total
}
