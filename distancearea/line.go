package distancearea

import (
	"math"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/geospaceio/distancearea/geodesic"
	"github.com/geospaceio/distancearea/units"
)

// maxProjectedLatitude is the stability guard D2 applies near the poles
// and beyond the date line: computeSpheroidProject's Vincenty recurrence
// becomes unstable outside it.
const maxProjectedLatitude = 85.05115

// MeasureLine measures the distance between two points given in the
// source CRS: the geodesic (Vincenty inverse) distance when an ellipsoid
// is configured, otherwise the planar Euclidean distance in source-CRS
// units. A transform failure is logged and reported as 0.
func (e *Engine) MeasureLine(p1, p2 orb.Point) float64 {
	if !e.WillUseEllipsoid() {
		return planarPointDistance(p1, p2)
	}

	gp1, err := e.toGeographic(p1)
	if err != nil {
		e.log().Warn("transform failed measuring line", zap.Error(err))
		return 0
	}
	gp2, err := e.toGeographic(p2)
	if err != nil {
		e.log().Warn("transform failed measuring line", zap.Error(err))
		return 0
	}

	var s float64
	e.geodesicEllipsoid().Inverse(gp1[1], gp1[0], gp2[1], gp2[0], &s, nil, nil)
	if s < 0 {
		e.log().Debug("vincenty inverse did not converge", zap.Error(ErrConvergenceFailure))
		return 0
	}
	return s
}

// MeasureLineProjected projects p1 a given distance (meters) along
// azimuthRad (radians, matching computeSpheroidProject's convention), and
// reports both the projected point (in source-CRS coordinates) and a
// measured distance. When the source CRS is geographic and an ellipsoid
// is configured, the projection uses D2 (computeSpheroidProject) subject
// to its |lon|<=180, |lat|<=85.05115 domain guard; otherwise it treats
// distance/azimuth as Cartesian in the source CRS's own units.
//
// The returned distance is always computed after p2 has been determined —
// the source this was distilled from computes it before p2 is assigned in
// the unit-converting Cartesian branch, a latent bug corrected here.
func (e *Engine) MeasureLineProjected(p1 orb.Point, distance, azimuthRad float64) (result float64, p2 orb.Point) {
	if e.crs.IsGeographic() && e.WillUseEllipsoid() {
		if math.Abs(p1[0]) > 180 || math.Abs(p1[1]) > maxProjectedLatitude {
			return 0, orb.Point{0, 0}
		}
		ell := e.geodesicEllipsoid()
		lat2, lon2 := geodesic.DirectProjected(ell.Radius(), ell.SemiMinor(), ell.Flattening(),
			p1[1]*radiansPerDegree, p1[0]*radiansPerDegree, azimuthRad, distance)
		p2 = orb.Point{lon2 / radiansPerDegree, lat2 / radiansPerDegree}
		return planarPointDistance(p1, p2), p2
	}

	result = distance
	projectDistance := distance
	if e.sourceUnit != units.Meters {
		projectDistance = units.ConvertDistance(distance, units.Meters, e.sourceUnit)
	}
	p2 = planarProject(p1, projectDistance, azimuthRad)
	if e.sourceUnit != units.Meters {
		result = planarPointDistance(p1, p2)
	}
	return result, p2
}

// Bearing reports the initial bearing (radians) from p1 to p2: the
// geodesic forward azimuth when an ellipsoid is configured, otherwise the
// planar azimuth atan2(dx, dy) in source-CRS coordinates.
func (e *Engine) Bearing(p1, p2 orb.Point) float64 {
	if !e.WillUseEllipsoid() {
		dx := p2[0] - p1[0]
		dy := p2[1] - p1[1]
		return math.Atan2(dx, dy)
	}

	gp1, err := e.toGeographic(p1)
	if err != nil {
		e.log().Warn("transform failed computing bearing", zap.Error(err))
		return 0
	}
	gp2, err := e.toGeographic(p2)
	if err != nil {
		e.log().Warn("transform failed computing bearing", zap.Error(err))
		return 0
	}

	var azi1 float64
	e.geodesicEllipsoid().Inverse(gp1[1], gp1[0], gp2[1], gp2[0], nil, &azi1, nil)
	return azi1 * radiansPerDegree
}

// Destination projects p (geographic degrees) a given distance (meters)
// along bearingDeg (degrees) using D1 ("destination", no iteration cap),
// returning the resulting geographic point. It always uses the engine's
// currently configured ellipsoid axes, independent of WillUseEllipsoid —
// matching bearing/destination's role as ellipsoid-dependent primitives
// rather than part of the planar/ellipsoidal measurement dispatch.
func (e *Engine) Destination(p orb.Point, distance, bearingDeg float64) orb.Point {
	var lat2, lon2 float64
	e.geodesicEllipsoid().Direct(p[1], p[0], bearingDeg, distance, &lat2, &lon2, nil)
	return orb.Point{lon2, lat2}
}

func planarProject(p orb.Point, dist, azimuthRad float64) orb.Point {
	return orb.Point{p[0] + dist*math.Sin(azimuthRad), p[1] + dist*math.Cos(azimuthRad)}
}

func planarPointDistance(a, b orb.Point) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return math.Hypot(dx, dy)
}
