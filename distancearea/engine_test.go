package distancearea

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geospaceio/distancearea/transform"
	"github.com/geospaceio/distancearea/units"
)

func wgs84Engine(t *testing.T) *Engine {
	e, ok := New().SetEllipsoidID("WGS84")
	require.True(t, ok)
	return e
}

func TestMeasureNilAndEmptyGeometry(t *testing.T) {
	e := wgs84Engine(t)
	assert.Equal(t, 0.0, e.Measure(nil, Default))
	assert.Equal(t, 0.0, e.Measure(orb.Point{1, 2}, Default))
}

func TestMeasureDefaultDerivesFromDimension(t *testing.T) {
	e := wgs84Engine(t)
	ls := orb.LineString{{0, 0}, {0, 1}}
	assert.Equal(t, e.MeasureLength(ls), e.Measure(ls, Default))

	poly := orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}}
	assert.Equal(t, e.MeasureArea(poly), e.Measure(poly, Default))
}

func TestMeasureLengthEquatorQuarterMeridian(t *testing.T) {
	e := wgs84Engine(t)
	// equator to the north pole along a meridian: a classic Vincenty fixture.
	ls := orb.LineString{{0, 0}, {0, 90}}
	got := e.MeasureLength(ls)
	assert.InDelta(t, 10001965.729, got, 1.0)
}

func TestMeasureLengthSumsMultiLineString(t *testing.T) {
	e := wgs84Engine(t)
	mls := orb.MultiLineString{
		{{0, 0}, {1, 0}},
		{{10, 0}, {11, 0}},
	}
	got := e.MeasureLength(mls)
	want := e.MeasureLength(mls[0]) + e.MeasureLength(mls[1])
	assert.Equal(t, want, got)
}

func TestMeasureAreaSubtractsHole(t *testing.T) {
	e := wgs84Engine(t)
	poly := orb.Polygon{
		{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}},
		{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
	}
	outerOnly := orb.Polygon{poly[0]}
	assert.Less(t, e.MeasureArea(poly), e.MeasureArea(outerOnly))
}

func TestMeasureFallsBackToPlanarWithNoEllipsoid(t *testing.T) {
	e := New() // NONE ellipsoid by default
	ls := orb.LineString{{0, 0}, {3, 4}}
	assert.Equal(t, 5.0, e.MeasureLength(ls))
}

func TestMeasurePerimeterRequiresSurface(t *testing.T) {
	e := wgs84Engine(t)
	ls := orb.LineString{{0, 0}, {0, 1}}
	assert.Equal(t, 0.0, e.MeasurePerimeter(ls))

	poly := orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}}
	assert.Greater(t, e.MeasurePerimeter(poly), 0.0)
}

func TestMeasurePerimeterIncludesHoles(t *testing.T) {
	e := wgs84Engine(t)
	outer := orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	hole := orb.Ring{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}}
	poly := orb.Polygon{outer, hole}
	outerOnly := orb.Polygon{outer}
	assert.Greater(t, e.MeasurePerimeter(poly), e.MeasurePerimeter(outerOnly))
}

func TestMeasureCollectionSumsParts(t *testing.T) {
	e := wgs84Engine(t)
	a := orb.LineString{{0, 0}, {1, 0}}
	b := orb.LineString{{10, 0}, {11, 0}}
	coll := orb.Collection{a, b}
	assert.Equal(t, e.MeasureLength(a)+e.MeasureLength(b), e.MeasureLength(coll))
}

func TestToGeographicIdentityOnGeographicCRS(t *testing.T) {
	e := wgs84Engine(t)
	p, err := e.toGeographic(orb.Point{12.5, -33.25})
	require.NoError(t, err)
	assert.Equal(t, orb.Point{12.5, -33.25}, p)
}

func TestToGeographicWrapsErrTransformFailed(t *testing.T) {
	epsg, err := transform.NewEPSG(3857)
	require.NoError(t, err)
	e := New().SetSourceCRS(epsg, units.Meters)

	_, err = e.toGeographic(orb.Point{math.NaN(), 0})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrTransformFailed))
}

func TestMeasureLineStringMatchesSumGeodesicClosed(t *testing.T) {
	e := wgs84Engine(t)
	ring := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	closed := e.sumGeodesicClosed(ring)
	open := e.measureLineString(orb.LineString{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}})
	assert.InDelta(t, closed, open, 1e-6)
}

func TestGeodesicEllipsoidUsesConfiguredAxes(t *testing.T) {
	e := wgs84Engine(t)
	g := e.geodesicEllipsoid()
	assert.Equal(t, e.ellip.SemiMajor, g.Radius())
	assert.InDelta(t, e.ellip.Flattening(), g.Flattening(), 1e-15)
	assert.False(t, math.IsNaN(g.Flattening()))
}
