package distancearea

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geospaceio/distancearea/ellipsoid"
)

func TestEllipsoidalRingAreaIsPositive(t *testing.T) {
	ring := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	area := ellipsoidalRingArea(wgs84Ellipsoid(t), ring)
	assert.Greater(t, area, 0.0)
}

func TestEllipsoidalRingAreaHandlesLongitudeWrap(t *testing.T) {
	e := wgs84Ellipsoid(t)
	// a small square straddling the antimeridian should integrate the same
	// magnitude as an equivalent square well away from it.
	straddling := []orb.Point{{179, 0}, {-179, 0}, {-179, 1}, {179, 1}}
	away := []orb.Point{{0, 0}, {2, 0}, {2, 1}, {0, 1}}
	assert.InDelta(t, ellipsoidalRingArea(e, straddling), ellipsoidalRingArea(e, away), ellipsoidalRingArea(e, away)*0.01)
}

func TestPolarCorrectClampsToEref(t *testing.T) {
	e := wgs84Ellipsoid(t)
	// an area above Eref is clamped to Eref first; the fold that follows
	// then maps that clamped value to Eref-Eref = 0.
	assert.Equal(t, 0.0, polarCorrect(e, e.Eref()*2))
}

func TestPolarCorrectFoldsLargerHalf(t *testing.T) {
	e := wgs84Ellipsoid(t)
	small := e.Eref() * 0.1
	large := e.Eref() * 0.9
	assert.InDelta(t, small, polarCorrect(e, large), 1.0)
}

func TestMeasurePolygonAreaNorthPoleRing(t *testing.T) {
	eng := wgs84Engine(t)
	// a ring of latitude near the pole should enclose a small area, not the
	// near-total surface the unwrapped series would otherwise report.
	ring := orb.Ring{{-180, 89}, {-90, 89}, {0, 89}, {90, 89}, {180, 89}}
	poly := orb.Polygon{ring}
	area := eng.MeasureArea(poly)
	assert.Greater(t, area, 0.0)
	assert.Less(t, area, eng.ellip.Eref()/100)
}

func TestMeasurePolygonAreaEmptyPolygon(t *testing.T) {
	eng := wgs84Engine(t)
	assert.Equal(t, 0.0, eng.measurePolygonArea(orb.Polygon{}))
}

func TestMeasurePolygonAreaSubtractsEachHoleIndependently(t *testing.T) {
	eng := wgs84Engine(t)
	outer := orb.Ring{{0, 0}, {0, 20}, {20, 20}, {20, 0}, {0, 0}}
	hole1 := orb.Ring{{2, 2}, {2, 4}, {4, 4}, {4, 2}, {2, 2}}
	hole2 := orb.Ring{{10, 10}, {10, 12}, {12, 12}, {12, 10}, {10, 10}}

	onlyOuter := eng.measurePolygonArea(orb.Polygon{outer})
	withHoles := eng.measurePolygonArea(orb.Polygon{outer, hole1, hole2})
	areaHole1 := eng.measureRingAreaEllipsoidal(mustRingToGeographic(t, eng, hole1))
	areaHole2 := eng.measureRingAreaEllipsoidal(mustRingToGeographic(t, eng, hole2))

	assert.InDelta(t, onlyOuter-areaHole1-areaHole2, withHoles, 1.0)
}

func wgs84Ellipsoid(t *testing.T) ellipsoid.Ellipsoid {
	t.Helper()
	p, err := ellipsoid.Lookup("WGS84")
	require.NoError(t, err)
	return ellipsoid.NewFromCatalog("WGS84", p.SemiMajor, p.InverseFlattening, p.DatumCRS)
}

func mustRingToGeographic(t *testing.T, e *Engine, ring orb.Ring) []orb.Point {
	t.Helper()
	pts, err := e.ringToGeographic(ring)
	require.NoError(t, err)
	return pts
}

func TestDyThresholdBranchesFiniteNearLimit(t *testing.T) {
	e := wgs84Ellipsoid(t)
	// two points separated by just under and just over dyThreshold in
	// latitude exercise both branches; neither should produce NaN.
	below := []orb.Point{{0, 10}, {1, 10 + dyThreshold*0.5}, {1, 10}, {0, 10}}
	above := []orb.Point{{0, 10}, {1, 10 + dyThreshold*2}, {1, 10}, {0, 10}}
	a1 := ellipsoidalRingArea(e, below)
	a2 := ellipsoidalRingArea(e, above)
	assert.False(t, math.IsNaN(a1))
	assert.False(t, math.IsNaN(a2))
}
