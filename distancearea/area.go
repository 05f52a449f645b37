package distancearea

import (
	"math"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/geospaceio/distancearea/ellipsoid"
	"github.com/geospaceio/distancearea/geomfacade"
)

// dyThreshold is the latitude-difference below which an edge's area
// contribution switches from the direct Qbar difference to the midpoint
// Q() limit, avoiding catastrophic cancellation as dy -> 0. GRASS's own
// comment calls for something between 1e-4 and 1e-7; this keeps their
// value.
const dyThreshold = 1e-6

const radiansPerDegree = math.Pi / 180

// ellipsoidalRingArea is the GRASS Q/Qbar series (§4.6) over a ring already
// projected to geographic (lon, lat) degrees. For a ring that encloses a
// pole it returns the region on the north-pole side of the ring, which for
// a ring around the south pole is the larger of the two complementary
// regions — callers apply polarCorrect to fold that back against the
// correct region.
func ellipsoidalRingArea(e ellipsoid.Ellipsoid, ring []orb.Point) float64 {
	n := len(ring)
	if n == 0 {
		return 0
	}

	x2 := ring[n-1][0] * radiansPerDegree
	y2 := ring[n-1][1] * radiansPerDegree
	qbar2 := e.Qbar(y2)

	area := 0.0
	for i := 0; i < n; i++ {
		x1, y1, qbar1 := x2, y2, qbar2

		x2 = ring[i][0] * radiansPerDegree
		y2 = ring[i][1] * radiansPerDegree
		qbar2 = e.Qbar(y2)

		// unwrap the shorter way around the sphere so a polygon spanning a
		// wide longitude extent still integrates correctly.
		if x1 > x2 {
			for x1-x2 > math.Pi {
				x2 += 2 * math.Pi
			}
		} else if x2 > x1 {
			for x2-x1 > math.Pi {
				x1 += 2 * math.Pi
			}
		}

		dx := x2 - x1
		dy := y2 - y1
		if math.Abs(dy) > dyThreshold {
			area += dx * (e.Qp() - (qbar2-qbar1)/dy)
		} else {
			area += dx * (e.Qp() - e.Q((y1+y2)/2))
		}
	}

	area *= e.AE()
	return math.Abs(area)
}

// polarCorrect folds an ellipsoidalRingArea result against the ellipsoid's
// total reference area when the ring actually encloses a pole: the series
// above always returns the "north pole" interpretation of the enclosed
// region, so a ring that actually encloses the opposite pole needs
// Eref-area instead.
func polarCorrect(e ellipsoid.Ellipsoid, area float64) float64 {
	eref := e.Eref()
	if area > eref {
		area = eref
	}
	if area > eref/2 {
		area = eref - area
	}
	return area
}

func (e *Engine) measureRingAreaEllipsoidal(ring []orb.Point) float64 {
	return polarCorrect(e.ellip, ellipsoidalRingArea(e.ellip, ring))
}

func (e *Engine) measurePolygonArea(p orb.Polygon) float64 {
	if len(p) == 0 {
		return 0
	}

	outer, err := e.ringToGeographic(geomfacade.ExteriorRing(p))
	if err != nil {
		e.log().Warn("transform failed measuring polygon", zap.Error(err))
		return 0
	}
	area := e.measureRingAreaEllipsoidal(outer)

	for i := 0; i < geomfacade.NumInteriorRings(p); i++ {
		hole, err := e.ringToGeographic(geomfacade.InteriorRing(p, i))
		if err != nil {
			e.log().Warn("transform failed measuring polygon hole", zap.Error(err))
			return 0
		}
		area -= e.measureRingAreaEllipsoidal(hole)
	}
	return area
}
