// Package geodesic implements the Vincenty geodesic kernels: the inverse
// problem (distance and bearings between two points), the direct problem
// (destination given a start point, distance and azimuth), and arc-length
// parameterized positions along a geodesic line.
//
// The package keeps the shape of a classic geodesic-library facade (an
// Ellipsoid that solves Inverse/Direct, a Line that can be sampled by arc
// length, and a Polygon accumulator for ring perimeters) but the numeric
// core is Vincenty's 1975 formulae rather than an opaque third-party
// solver, so the iteration caps and tolerances callers depend on are
// concrete and testable.
package geodesic

import "math"

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = NewEllipsoid(6378137, 1.0/298.257223563)

// Ellipsoid parameterizes the Vincenty kernels for a given oblate spheroid.
type Ellipsoid struct {
	a, f, b float64
}

// NewEllipsoid builds a geodesic kernel from the equatorial radius (meters)
// and flattening factor. A flattening of 0 describes a sphere; the Vincenty
// formulae degenerate correctly in that case, so no separate spherical path
// is needed.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	return &Ellipsoid{a: radius, f: flattening, b: radius * (1 - flattening)}
}

// NewEllipsoidAxes builds a geodesic kernel directly from the semi-major
// and semi-minor axes (meters), deriving the flattening as (a-b)/a. Unlike
// NewEllipsoid, it keeps the caller's semi-minor axis exactly rather than
// recomputing it from a rounded flattening.
func NewEllipsoidAxes(a, b float64) *Ellipsoid {
	f := 0.0
	if a != 0 {
		f = (a - b) / a
	}
	return &Ellipsoid{a: a, f: f, b: b}
}

// Radius returns the equatorial radius in meters.
func (e *Ellipsoid) Radius() float64 { return e.a }

// SemiMinor returns the polar radius in meters.
func (e *Ellipsoid) SemiMinor() float64 { return e.b }

// Flattening returns the flattening factor f = (a-b)/a.
func (e *Ellipsoid) Flattening() float64 { return e.f }

// Inverse solves the inverse geodesic problem: distance and forward/back
// azimuths between two points given in degrees.
//
// s12, azi1 and azi2 receive the distance (meters) and azimuths (degrees);
// any of them may be nil. If the Vincenty iteration exhausts
// maxInverseIterations without converging, s12 is set to the sentinel -1
// (ConvergenceFailure) and azi1/azi2 are left untouched. Geodesic.InverseLine
// is built on this same call, so a Line between such points carries the
// same -1 sentinel.
func (e *Ellipsoid) Inverse(lat1, lon1, lat2, lon2 float64, s12, azi1, azi2 *float64) {
	s, a1, a2, converged := vincentyInverse(e.a, e.b, e.f,
		lat1*radians, lon1*radians, lat2*radians, lon2*radians)
	if !converged {
		if s12 != nil {
			*s12 = -1
		}
		return
	}
	if s12 != nil {
		*s12 = s
	}
	if azi1 != nil {
		*azi1 = a1 * degrees
	}
	if azi2 != nil {
		*azi2 = a2 * degrees
	}
}

// Direct solves the direct geodesic problem with no iteration cap (the
// "destination" form): azi1 is in degrees, s12 in meters, and the outputs
// are in degrees.
func (e *Ellipsoid) Direct(lat1, lon1, azi1, s12 float64, lat2, lon2, azi2 *float64) {
	la2, lo2, az2 := vincentyDirect(e.a, e.b, e.f,
		lat1*radians, lon1*radians, azi1*radians, s12, 0)
	if lat2 != nil {
		*lat2 = la2 * degrees
	}
	if lon2 != nil {
		*lon2 = lo2 * degrees
	}
	if azi2 != nil {
		*azi2 = az2 * degrees
	}
}

// Polygon accumulates vertices of a geodesic ring or polyline, one edge at
// a time, and reports the accumulated perimeter. Unlike a general
// polygon-area accumulator, only the perimeter is load-bearing here: the
// engine's ellipsoidal area always comes from the GRASS Q/Qbar series (see
// package distancearea), so Polygon does not attempt to duplicate that
// computation.
type Polygon struct {
	e                  *Ellipsoid
	polyline           bool
	points             int
	havePrev           bool
	firstLat, firstLon float64
	prevLat, prevLon   float64

	// perimeter is accumulated with a running compensation term (Kahan
	// summation) so that many-sided rings don't lose precision the way a
	// naive running sum would.
	perimeter, perimeterErr float64
}

// PolygonInit initializes a polygon (or, if polyline is set, an open
// polyline) accumulator on e.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	return Polygon{e: e, polyline: polyline}
}

// AddPoint adds a vertex (degrees) to the polygon or polyline, accumulating
// the geodesic distance from the previous vertex into the running
// perimeter.
func (p *Polygon) AddPoint(lat, lon float64) {
	if p.havePrev {
		var s float64
		p.e.Inverse(p.prevLat, p.prevLon, lat, lon, &s, nil, nil)
		if s >= 0 {
			p.kahanAdd(s)
		}
	} else {
		p.firstLat, p.firstLon = lat, lon
	}
	p.prevLat, p.prevLon = lat, lon
	p.havePrev = true
	p.points++
}

// AddEdge adds an edge of known azimuth (degrees) and length (meters) from
// the current point, advancing the accumulator to the new vertex it
// implies.
func (p *Polygon) AddEdge(azi, s float64) {
	if !p.havePrev {
		return
	}
	var lat2, lon2 float64
	p.e.Direct(p.prevLat, p.prevLon, azi, s, &lat2, &lon2, nil)
	p.kahanAdd(s)
	p.prevLat, p.prevLon = lat2, lon2
	p.points++
}

func (p *Polygon) kahanAdd(s float64) {
	corrected := s - p.perimeterErr
	total := p.perimeter + corrected
	p.perimeterErr = (total - p.perimeter) - corrected
	p.perimeter = total
}

// Compute reports the perimeter/length and vertex count accumulated so far.
// Unless the accumulator was initialized as a polyline, the closing edge
// back to the first vertex is included even if the caller never repeated
// it — callers don't need to "close" the polygon themselves. Further points
// may be added afterwards.
func (p *Polygon) Compute(perimeter *float64) int {
	total := p.perimeter
	if !p.polyline && p.points > 1 && (p.prevLat != p.firstLat || p.prevLon != p.firstLon) {
		var closing float64
		p.e.Inverse(p.prevLat, p.prevLon, p.firstLat, p.firstLon, &closing, nil, nil)
		if closing >= 0 {
			total += closing
		}
	}
	if perimeter != nil {
		*perimeter = total
	}
	return p.points
}

// Clear resets the accumulator so a new polygon or polyline can be built.
func (p *Polygon) Clear() {
	*p = Polygon{e: p.e, polyline: p.polyline}
}

const (
	degrees = 180 / math.Pi
	radians = math.Pi / 180
)
