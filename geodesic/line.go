package geodesic

// Geodesic is a position-sampling context built from an Ellipsoid, matching
// the init/inverseLine/position shape of a third-party geodesic library
// (spec's C5). Accuracy on the ≤20,000 km inverse lines it builds comes
// from the same Vincenty kernel as Ellipsoid.Inverse/Direct. Building a Line
// runs the Vincenty inverse once, so it fails the same way (S13 = -1) where
// that λ iteration does not converge, as for near-antipodal points;
// Position itself uses the direct solution and does not iterate on λ.
type Geodesic struct {
	e *Ellipsoid
}

// Init builds a Geodesic context from e.
func Init(e *Ellipsoid) *Geodesic {
	return &Geodesic{e: e}
}

// Line is a geodesic arc from p1 to p2, parameterized by arc length from
// p1. S13 is the total arc length (meters).
type Line struct {
	g          *Geodesic
	lat1, lon1 float64 // radians
	azi1       float64 // radians, forward azimuth at p1
	S13        float64 // meters
}

// InverseLine builds the geodesic arc between two points given in degrees.
// If the underlying Vincenty inverse fails to converge, S13 is the
// sentinel -1, matching Ellipsoid.Inverse's ConvergenceFailure contract.
func (g *Geodesic) InverseLine(lat1, lon1, lat2, lon2 float64) *Line {
	var s12, azi1 float64
	g.e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, nil)
	return &Line{
		g:    g,
		lat1: lat1 * radians,
		lon1: lon1 * radians,
		azi1: azi1 * radians,
		S13:  s12,
	}
}

// Position returns the point (degrees) and forward azimuth (degrees) at
// arc length s from p1 along the line. Longitude may fall outside
// [-180, 180]; callers normalize if needed.
func (l *Line) Position(s float64) (lat, lon, azimuth float64) {
	la2, lo2, az2 := vincentyDirect(l.g.e.a, l.g.e.b, l.g.e.f, l.lat1, l.lon1, l.azi1, s, 0)
	return la2 * degrees, lo2 * degrees, az2 * degrees
}
