// Package transform is the coordinate-transform adapter between a
// geometry's source CRS and the geographic datum a measurement engine
// reasons in. It wraps github.com/wroge/wgs84's EPSG registry and
// Transform pipeline, exposing only the two operations the engine
// needs: projecting source-CRS coordinates to geographic longitude and
// latitude, and the reverse, used when antimeridian-split points are
// inserted back into source-CRS space.
package transform

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/wroge/wgs84"
)

// Error is returned when a forward or reverse projection fails because
// the input falls outside the CRS's area of use, or the projection is
// singular at that point.
type Error struct {
	CRS string
	X   float64
	Y   float64
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transform: %s at (%g, %g): %v", e.CRS, e.X, e.Y, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var errOutOfDomain = errors.New("coordinate outside CRS area of use")

// geographic is the shared WGS-84-like longitude/latitude datum every
// source CRS is transformed to and from.
var geographic = wgs84.WGS84().LonLat()

// Adapter projects between one source CRS and the geographic datum.
// The zero value is not usable; construct with NewEPSG or NewGeographic.
type Adapter struct {
	label   string
	forward func(a, b, c float64) (float64, float64, float64)
	inverse func(a, b, c float64) (float64, float64, float64)
}

// NewGeographic returns an Adapter for a source CRS that is already
// geographic (longitude/latitude in degrees), making both directions the
// identity transform. This is the common case: most geometries measured
// by the engine already arrive in a WGS-84-like datum.
func NewGeographic() *Adapter {
	identity := func(a, b, c float64) (float64, float64, float64) { return a, b, c }
	return &Adapter{label: "geographic", forward: identity, inverse: identity}
}

// NewEPSG resolves a source CRS from the EPSG registry wgs84 carries and
// returns an Adapter that projects between it and the geographic datum.
func NewEPSG(code int) (*Adapter, error) {
	crs := wgs84.EPSG().Code(code)
	if crs == nil {
		return nil, errors.Wrapf(errOutOfDomain, "EPSG:%d not found in registry", code)
	}
	return &Adapter{
		label:   fmt.Sprintf("EPSG:%d", code),
		forward: wgs84.Transform(crs, geographic),
		inverse: wgs84.Transform(geographic, crs),
	}, nil
}

// ToGeographic projects a source-CRS coordinate (x, y[, z]) to
// (longitude, latitude[, z]) degrees in the engine's geographic datum.
// z carries through unprojected (ellipsoidal height is outside this
// adapter's scope) unless the underlying pipeline rejects the point, in
// which case it returns a *Error.
func (t *Adapter) ToGeographic(x, y, z float64) (lon, lat, outZ float64, err error) {
	lon, lat, outZ = t.forward(x, y, z)
	if !isFinite(lon) || !isFinite(lat) {
		return 0, 0, 0, &Error{CRS: t.label, X: x, Y: y, Err: errOutOfDomain}
	}
	return lon, lat, outZ, nil
}

// FromGeographic is the reverse of ToGeographic, used only when
// inserting antimeridian-split points back into source-CRS space.
func (t *Adapter) FromGeographic(lon, lat, z float64) (x, y, outZ float64, err error) {
	x, y, outZ = t.inverse(lon, lat, z)
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, 0, &Error{CRS: t.label, X: lon, Y: lat, Err: errOutOfDomain}
	}
	return x, y, outZ, nil
}

// IsGeographic reports whether this adapter's source CRS is already the
// geographic datum (an identity transform), which a caller uses to
// decide whether longitude normalization before projection is
// meaningful.
func (t *Adapter) IsGeographic() bool {
	return t.label == "geographic"
}

// String returns the adapter's source CRS label, for diagnostics.
func (t *Adapter) String() string { return t.label }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
