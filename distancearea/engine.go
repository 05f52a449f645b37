package distancearea

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/geospaceio/distancearea/geodesic"
	"github.com/geospaceio/distancearea/geomfacade"
)

// MeasureType selects which measurement Measure performs. Default derives
// it from the geometry's dimension: 1 -> Length, 2 -> Area.
type MeasureType int

const (
	Default MeasureType = iota
	Length
	Area
)

// Measure dispatches on g's dimension and the engine's ellipsoid state
// (§C8). A nil or dimension-0 geometry measures as 0. Collections sum
// their parts. With no ellipsoid configured, measurement falls back to
// the geometry's own planar length/area.
func (e *Engine) Measure(g orb.Geometry, mtype MeasureType) float64 {
	if g == nil {
		return 0
	}
	dim := geomfacade.Dimension(g)
	if dim <= 0 {
		return 0
	}
	if mtype == Default {
		if dim == 1 {
			mtype = Length
		} else {
			mtype = Area
		}
	}

	if !e.WillUseEllipsoid() {
		return e.measurePlanar(g, mtype)
	}

	if geomfacade.IsCollection(g) {
		sum := 0.0
		for _, part := range geomfacade.Parts(g) {
			sum += e.Measure(part, mtype)
		}
		return sum
	}

	if mtype == Length {
		ls, ok := geomfacade.CurveToLine(g)
		if !ok {
			return 0
		}
		return e.measureLineString(ls)
	}

	p, ok := g.(orb.Polygon)
	if !ok {
		return 0
	}
	return e.measurePolygonArea(p)
}

// MeasureLength is Measure(g, Length).
func (e *Engine) MeasureLength(g orb.Geometry) float64 { return e.Measure(g, Length) }

// MeasureArea is Measure(g, Area).
func (e *Engine) MeasureArea(g orb.Geometry) float64 { return e.Measure(g, Area) }

// MeasurePerimeter sums every ring's length (exterior and interior) of a
// surface, or of every surface in a collection of them. Geometries of
// dimension less than 2 measure as 0 — this is a surface-only operation,
// unlike MeasureLength/MeasureArea which both accept dimension-1 input.
func (e *Engine) MeasurePerimeter(g orb.Geometry) float64 {
	if g == nil || geomfacade.Dimension(g) < 2 {
		return 0
	}

	if !e.WillUseEllipsoid() {
		switch v := g.(type) {
		case orb.Polygon:
			return geomfacade.PlanarPerimeter(v)
		case orb.MultiPolygon:
			total := 0.0
			for _, p := range v {
				total += geomfacade.PlanarPerimeter(p)
			}
			return total
		case orb.Collection:
			total := 0.0
			for _, part := range v {
				total += e.MeasurePerimeter(part)
			}
			return total
		default:
			return 0
		}
	}

	switch v := g.(type) {
	case orb.Polygon:
		return e.measurePolygonPerimeter(v)
	case orb.MultiPolygon:
		total := 0.0
		for _, p := range v {
			total += e.measurePolygonPerimeter(p)
		}
		return total
	case orb.Collection:
		total := 0.0
		for _, part := range v {
			total += e.MeasurePerimeter(part)
		}
		return total
	default:
		return 0
	}
}

func (e *Engine) measurePlanar(g orb.Geometry, mtype MeasureType) float64 {
	if mtype == Length {
		switch v := g.(type) {
		case orb.LineString:
			return geomfacade.PlanarLength(v)
		case orb.Ring:
			return geomfacade.RingLength(v)
		case orb.MultiLineString:
			total := 0.0
			for _, ls := range v {
				total += geomfacade.PlanarLength(ls)
			}
			return total
		case orb.Collection:
			total := 0.0
			for _, part := range v {
				total += e.measurePlanar(part, mtype)
			}
			return total
		default:
			return 0
		}
	}

	switch v := g.(type) {
	case orb.Polygon:
		return geomfacade.PlanarPolygonArea(v)
	case orb.MultiPolygon:
		total := 0.0
		for _, p := range v {
			total += geomfacade.PlanarPolygonArea(p)
		}
		return total
	case orb.Collection:
		total := 0.0
		for _, part := range v {
			total += e.measurePlanar(part, mtype)
		}
		return total
	default:
		return 0
	}
}

// geodesicEllipsoid builds a Vincenty kernel from the engine's currently
// configured ellipsoid axes.
func (e *Engine) geodesicEllipsoid() *geodesic.Ellipsoid {
	return geodesic.NewEllipsoidAxes(e.ellip.SemiMajor, e.ellip.SemiMinor)
}

// toGeographic projects a single source-CRS point to geographic (lon, lat)
// degrees.
func (e *Engine) toGeographic(pt orb.Point) (orb.Point, error) {
	lon, lat, _, err := e.crs.ToGeographic(pt[0], pt[1], 0)
	if err != nil {
		return orb.Point{}, errors.Wrapf(ErrTransformFailed, "vertex (%g, %g): %v", pt[0], pt[1], err)
	}
	return orb.Point{lon, lat}, nil
}

// ringToGeographic projects every vertex of a ring to geographic
// coordinates, failing the whole ring if any vertex does.
func (e *Engine) ringToGeographic(ring orb.Ring) ([]orb.Point, error) {
	pts := make([]orb.Point, len(ring))
	for i, pt := range ring {
		g, err := e.toGeographic(pt)
		if err != nil {
			return nil, err
		}
		pts[i] = g
	}
	return pts, nil
}

func (e *Engine) measureLineString(ls orb.LineString) float64 {
	if len(ls) < 2 {
		return 0
	}
	ell := e.geodesicEllipsoid()

	p1, err := e.toGeographic(ls[0])
	if err != nil {
		e.log().Warn("transform failed measuring line", zap.Error(err))
		return 0
	}

	total := 0.0
	for i := 1; i < len(ls); i++ {
		p2, err := e.toGeographic(ls[i])
		if err != nil {
			e.log().Warn("transform failed measuring line", zap.Error(err))
			return 0
		}
		var s float64
		ell.Inverse(p1[1], p1[0], p2[1], p2[0], &s, nil, nil)
		if s < 0 {
			e.log().Debug("vincenty inverse did not converge", zap.Error(ErrConvergenceFailure))
		} else {
			total += s
		}
		p1 = p2
	}
	return total
}

// sumGeodesicClosed sums consecutive Vincenty distances around a ring of
// geographic points, including the closing edge back to the first vertex —
// harmless as a zero-length edge if the ring already repeats it. Built on
// the geodesic.Polygon accumulator, which also protects the running sum
// against the precision loss a naive running total would suffer on
// many-sided rings.
func (e *Engine) sumGeodesicClosed(pts []orb.Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	acc := e.geodesicEllipsoid().PolygonInit(false)
	for _, pt := range pts {
		acc.AddPoint(pt[1], pt[0])
	}
	var total float64
	acc.Compute(&total)
	return total
}

func (e *Engine) measurePolygonPerimeter(p orb.Polygon) float64 {
	total := 0.0
	for _, ring := range p {
		pts, err := e.ringToGeographic(ring)
		if err != nil {
			e.log().Warn("transform failed measuring ring perimeter", zap.Error(err))
			continue
		}
		total += e.sumGeodesicClosed(pts)
	}
	return total
}
