package distancearea

import (
	"go.uber.org/zap"

	"github.com/geospaceio/distancearea/units"
)

// LengthUnits reports the unit a Measure(..., Length) result is in: meters
// when ellipsoidal measurement is active (every geodesic kernel here works
// in meters), otherwise the source CRS's configured linear unit.
func (e *Engine) LengthUnits() units.Distance {
	if e.WillUseEllipsoid() {
		return units.Meters
	}
	return e.sourceUnit
}

// AreaUnits reports the unit a Measure(..., Area) result is in: square
// meters when ellipsoidal measurement is active, otherwise the areal unit
// naturally associated with the source CRS's linear unit.
func (e *Engine) AreaUnits() units.Area {
	if e.WillUseEllipsoid() {
		return units.SquareMeters
	}
	return units.DistanceToArea(e.sourceUnit)
}

// ConvertLengthMeasurement converts v, reported in LengthUnits(), into to.
func (e *Engine) ConvertLengthMeasurement(v float64, to units.Distance) float64 {
	from := e.LengthUnits()
	result := units.ConvertDistance(v, from, to)
	e.log().Debug("converted length measurement",
		zap.Float64("value", v), zap.Int("from", int(from)),
		zap.Int("to", int(to)), zap.Float64("result", result))
	return result
}

// ConvertAreaMeasurement converts v, reported in AreaUnits(), into to.
func (e *Engine) ConvertAreaMeasurement(v float64, to units.Area) float64 {
	from := e.AreaUnits()
	result := units.ConvertArea(v, from, to)
	e.log().Debug("converted area measurement",
		zap.Float64("value", v), zap.Int("from", int(from)),
		zap.Int("to", int(to)), zap.Float64("result", result))
	return result
}
