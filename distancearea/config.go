// Package distancearea is a geodesic distance, area, and geometry
// measurement engine operating on an oblate ellipsoid of revolution. Given
// line and polygon geometries whose vertices are in an arbitrary source
// CRS, it computes ellipsoidal line lengths and bearings, ellipsoidal
// polygon areas, the geodesic direct problem, densified geodesic
// polylines, and antimeridian-crossing latitudes — falling back to planar
// (Cartesian) formulas when no ellipsoid is configured.
//
// Configuration is modeled as an immutable value: every setter returns a
// new *Engine rather than mutating the receiver, so a configured Engine is
// safe to share across goroutines for concurrent read-only measurement.
// Reconfiguring it (SetSourceCRS, SetEllipsoidID, SetEllipsoid) never
// races with an in-flight measurement on the Engine it was derived from.
package distancearea

import (
	"go.uber.org/zap"

	"github.com/geospaceio/distancearea/ellipsoid"
	"github.com/geospaceio/distancearea/transform"
	"github.com/geospaceio/distancearea/units"
)

// Engine is a frozen measurement configuration: a source CRS adapter, an
// optional ellipsoid, and the injected dependencies (ellipsoid catalog,
// logger) that back them. The zero value is not usable; build one with
// New.
type Engine struct {
	crs        *transform.Adapter
	sourceUnit units.Distance

	ellipsoidID string
	ellip       ellipsoid.Ellipsoid

	catalog ellipsoid.Catalog
	logger  *zap.Logger
}

// New returns an Engine with no ellipsoid configured (planar measurement)
// and a geographic source CRS, using the package-default ellipsoid
// catalog and a no-op logger.
//
// Destination is defined on the currently configured ellipsoid axes
// regardless of WillUseEllipsoid (Bearing, like the measureLine/measureArea
// family, falls back to planar when WillUseEllipsoid is false) — so even a
// freshly built Engine carries WGS-84 axes internally rather than a
// degenerate (a, b) = (0, 0), which would otherwise poison every Vincenty
// call with NaNs until a caller configured one explicitly.
func New() *Engine {
	return &Engine{
		crs:         transform.NewGeographic(),
		sourceUnit:  units.Degrees,
		ellipsoidID: ellipsoid.NoneID,
		ellip:       ellipsoid.NewFromCatalog("WGS84", 6378137.0, 298.257223563, "EPSG:4326"),
		catalog:     ellipsoid.Default,
		logger:      zap.NewNop(),
	}
}

func (e *Engine) clone() *Engine {
	c := *e
	return &c
}

// WithLogger returns a new Engine that logs diagnostics (transform
// failures, convergence failures, rejected configuration) to logger.
func (e *Engine) WithLogger(logger *zap.Logger) *Engine {
	c := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return c
}

// WithCatalog returns a new Engine that resolves SetEllipsoidID against
// catalog instead of the package default. Tests substitute a fixture
// catalog here.
func (e *Engine) WithCatalog(catalog ellipsoid.Catalog) *Engine {
	c := e.clone()
	if catalog == nil {
		catalog = ellipsoid.Default
	}
	c.catalog = catalog
	return c
}

// SetSourceCRS returns a new Engine whose geometry inputs are interpreted
// in crs, reporting unit as the native linear map unit used when no
// ellipsoid is configured (LengthUnits/AreaUnits, §C9).
func (e *Engine) SetSourceCRS(crs *transform.Adapter, unit units.Distance) *Engine {
	c := e.clone()
	c.crs = crs
	c.sourceUnit = unit
	return c
}

// SetEllipsoidID resolves id against the engine's catalog and, on success,
// returns a new Engine configured to measure on it. The sentinel id
// ellipsoid.NoneID (and the empty string) disables ellipsoidal
// measurement. ok is false, and the returned Engine is the receiver
// unchanged, if id isn't known to the catalog.
func (e *Engine) SetEllipsoidID(id string) (engine *Engine, ok bool) {
	if id == ellipsoid.NoneID || id == "" {
		c := e.clone()
		c.ellipsoidID = ellipsoid.NoneID
		c.ellip = ellipsoid.Ellipsoid{}
		return c, true
	}
	params, err := e.catalog.Lookup(id)
	if err != nil {
		e.log().Warn("unknown ellipsoid identifier",
			zap.String("id", id), zap.Error(ErrUnknownEllipsoidID))
		return e, false
	}
	c := e.clone()
	c.ellipsoidID = id
	c.ellip = ellipsoid.NewFromCatalog(id, params.SemiMajor, params.InverseFlattening, params.DatumCRS)
	return c, true
}

// SetEllipsoid returns a new Engine configured with a custom ellipsoid
// defined by its semi-major and semi-minor axes, identified afterwards by
// the synthetic id PARAMETER:<a>:<b>. ok is false — and the returned
// Engine is the receiver unchanged — if either axis isn't positive or b
// exceeds a.
//
// a == b (a sphere) is accepted: InverseFlattening is +Inf in that case,
// but Flattening() still correctly yields 0, so the Vincenty kernels
// degenerate to the spherical case rather than misbehaving. Callers that
// care about the distinction should check EllipsoidID() or the axes
// themselves; this engine does not silently clamp it.
func (e *Engine) SetEllipsoid(a, b float64) (engine *Engine, ok bool) {
	if a <= 0 || b <= 0 || b > a {
		e.log().Warn("invalid ellipsoid axes",
			zap.Float64("a", a), zap.Float64("b", b), zap.Error(ErrInvalidEllipsoid))
		return e, false
	}
	c := e.clone()
	c.ellip = ellipsoid.New(a, b)
	c.ellipsoidID = c.ellip.ID
	return c, true
}

// WillUseEllipsoid reports whether ellipsoidal (as opposed to planar)
// measurement is active.
func (e *Engine) WillUseEllipsoid() bool {
	return e.ellipsoidID != "" && e.ellipsoidID != ellipsoid.NoneID
}

// EllipsoidID returns the currently configured ellipsoid identifier, or
// ellipsoid.NoneID if ellipsoidal measurement is disabled.
func (e *Engine) EllipsoidID() string { return e.ellipsoidID }
