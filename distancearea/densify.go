package distancearea

import (
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/geospaceio/distancearea/geodesic"
)

// GeodesicLine builds one or more densified polylines (source-CRS
// coordinates) approximating the geodesic between p1 and p2, sampling a
// point roughly every interval meters. With no ellipsoid configured it
// degenerates to the two-point segment [p1, p2].
//
// When breakLine is set, the walk is split into multiple LineStrings at
// any sample that crosses the antimeridian, inserting a point on the
// antimeridian (at the resolved crossing latitude) on each side of the
// break, reusing the same resolver SplitGeometryAtAntimeridian calls.
//
// A transform failure on either endpoint is logged and reported as nil.
func (e *Engine) GeodesicLine(p1, p2 orb.Point, interval float64, breakLine bool) []orb.LineString {
	if !e.WillUseEllipsoid() {
		return []orb.LineString{{p1, p2}}
	}

	gp1, err := e.toGeographic(p1)
	if err != nil {
		e.log().Warn("transform failed building geodesic line", zap.Error(err))
		return nil
	}
	gp2, err := e.toGeographic(p2)
	if err != nil {
		e.log().Warn("transform failed building geodesic line", zap.Error(err))
		return nil
	}

	g := geodesic.Init(e.geodesicEllipsoid())
	line := g.InverseLine(gp1[1], gp1[0], gp2[1], gp2[0])
	totalDist := line.S13

	var result []orb.LineString
	current := orb.LineString{p1}
	d := interval
	prevLon, prevLat := gp1[0], gp1[1]
	lastRun := false

	for {
		var lat, lon float64
		if lastRun {
			lat, lon = gp2[1], gp2[0]
			if lon > 180 {
				lon -= 360
			}
		} else {
			lat, lon, _ = line.Position(d)
			if lon > 180 {
				lon -= 360
			} else if lon < -180 {
				lon += 360
			}
		}

		if breakLine && crossesLongJump(prevLon, lon) {
			lat180, _ := e.crossesAntimeridian(orb.Point{prevLon, prevLat}, orb.Point{lon, lat})

			leavingLon := 180.0
			if prevLon < -antimeridianJumpThreshold {
				leavingLon = -180
			}
			if leaving, err := e.fromGeographic(leavingLon, lat180); err == nil && finitePoint(leaving) {
				current = append(current, leaving)
			}
			result = append(result, current)
			current = orb.LineString{}

			enteringLon := 180.0
			if lon < -antimeridianJumpThreshold {
				enteringLon = -180
			}
			if entering, err := e.fromGeographic(enteringLon, lat180); err == nil && finitePoint(entering) {
				current = append(current, entering)
			}
		}

		prevLon, prevLat = lon, lat

		if p, err := e.fromGeographic(lon, lat); err == nil && finitePoint(p) {
			current = append(current, p)
		}

		if lastRun {
			break
		}
		d += interval
		if d >= totalDist {
			lastRun = true
		}
	}

	result = append(result, current)
	return result
}
