package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseEquatorToPole(t *testing.T) {
	var s12, azi1 float64
	WGS84.Inverse(0, 0, 90, 0, &s12, &azi1, nil)
	assert.InDelta(t, 10001965.729, s12, 1e-3)
	assert.InDelta(t, 0, azi1, 1e-6)
}

func TestInverseDistanceSymmetry(t *testing.T) {
	var sForward, sBack float64
	WGS84.Inverse(10, 20, -33, 151, &sForward, nil, nil)
	WGS84.Inverse(-33, 151, 10, 20, &sBack, nil, nil)
	assert.Less(t, math.Abs(sForward-sBack), 1e-6)
}

func TestInverseBearingPairing(t *testing.T) {
	var s12, azi1, azi2 float64
	WGS84.Inverse(10, 20, -33, 151, &s12, &azi1, &azi2)

	azi1rad := azi1 * radians
	azi2rad := azi2 * radians

	diff := math.Mod(azi2rad-azi1rad-math.Pi, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	assert.Less(t, math.Abs(diff), 1e-9)
}

func TestInverseCoincidentPoints(t *testing.T) {
	var s12, azi1, azi2 float64
	WGS84.Inverse(12.5, -70.2, 12.5, -70.2, &s12, &azi1, &azi2)
	assert.Equal(t, 0.0, s12)
}

func TestInverseEquatorialAntipode(t *testing.T) {
	var s12 float64
	WGS84.Inverse(0, 0, 0, 179.9, &s12, nil, nil)
	require.GreaterOrEqual(t, s12, 0.0, "expected a finite convergent distance")
}

func TestDirectInverseRoundTrip(t *testing.T) {
	var lat2, lon2, azi2 float64
	WGS84.Direct(45, 10, 90, 100000, &lat2, &lon2, &azi2)

	var s12, azi1 float64
	WGS84.Inverse(45, 10, lat2, lon2, &s12, &azi1, nil)

	assert.InDelta(t, 100000, s12, 1e-3)
	assert.InDelta(t, 90, azi1, 1e-6)
}

func TestLinePosition(t *testing.T) {
	g := Init(WGS84)
	line := g.InverseLine(0, 0, 0, 90)
	require.Greater(t, line.S13, 0.0)

	lat, lon, _ := line.Position(line.S13)
	assert.InDelta(t, 0, lat, 1e-6)
	assert.InDelta(t, 90, lon, 1e-6)

	lat, lon, _ = line.Position(0)
	assert.InDelta(t, 0, lat, 1e-9)
	assert.InDelta(t, 0, lon, 1e-9)
}

func TestDirectProjected(t *testing.T) {
	lat2, lon2 := DirectProjected(WGS84.Radius(), WGS84.SemiMinor(), WGS84.Flattening(),
		45*radians, 10*radians, 90*radians, 100000)
	assert.InDelta(t, 45, lat2*degrees, 1e-3)
	assert.Greater(t, lon2*degrees, 10.0)
}

func TestPolygonPerimeterSquareIsFourEdges(t *testing.T) {
	p := WGS84.PolygonInit(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)
	p.AddPoint(1, 1)
	p.AddPoint(1, 0)

	var perimeter float64
	n := p.Compute(&perimeter)
	assert.Equal(t, 4, n)
	assert.Greater(t, perimeter, 0.0)

	// A ring traversed and explicitly closed should give the same perimeter
	// as one left open (Compute closes it implicitly).
	closed := WGS84.PolygonInit(false)
	closed.AddPoint(0, 0)
	closed.AddPoint(0, 1)
	closed.AddPoint(1, 1)
	closed.AddPoint(1, 0)
	closed.AddPoint(0, 0)
	var closedPerimeter float64
	closed.Compute(&closedPerimeter)
	assert.InDelta(t, perimeter, closedPerimeter, 1e-6)
}

func TestPolygonPolylineDoesNotClose(t *testing.T) {
	p := WGS84.PolygonInit(true)
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)

	var length float64
	p.Compute(&length)

	var direct float64
	WGS84.Inverse(0, 0, 0, 1, &direct, nil, nil)
	assert.InDelta(t, direct, length, 1e-6)
}
