// Package ellipsoid models the oblate spheroid an engine measures on:
// semi-major/semi-minor axes, inverse flattening, and the derived series
// coefficients the ellipsoidal area kernel needs (Q/Qbar, AE, Qp, and the
// total reference area Eref).
package ellipsoid

import (
	"math"
	"strconv"
)

// NoneID is the sentinel ellipsoid identifier that disables ellipsoidal
// measurement; an engine configured with it falls back to planar formulas.
const NoneID = "NONE"

// Ellipsoid is an immutable record of an oblate spheroid's defining
// parameters plus the constants precomputed from them for ellipsoidal area
// integration. Mutating the engine's ellipsoid produces a new Ellipsoid
// value rather than modifying one in place, so instances are safe to share
// across goroutines for read-only measurement.
type Ellipsoid struct {
	ID string

	SemiMajor         float64
	SemiMinor         float64
	InverseFlattening float64
	DatumCRS          string

	// derived constants for the GRASS Q/Qbar ellipsoidal area series.
	qa, qb, qc                 float64
	qbarA, qbarB, qbarC, qbarD float64
	qp, ae, eref               float64
}

// New builds an Ellipsoid from semi-major/semi-minor axes, deriving
// 1/f = a/(a-b) and the area-series constants. When a == b (a sphere),
// InverseFlattening is +Inf; Flattening() still correctly reports 0.
// The identifier takes the synthetic PARAMETER:<a>:<b> form used when no
// catalog entry backs the ellipsoid.
func New(a, b float64) Ellipsoid {
	e := Ellipsoid{
		ID:                syntheticID(a, b),
		SemiMajor:         a,
		SemiMinor:         b,
		InverseFlattening: a / (a - b),
	}
	e.computeAreaConstants()
	return e
}

// NewFromCatalog builds an Ellipsoid from catalog parameters (semi-major
// axis and inverse flattening), as looked up by id.
func NewFromCatalog(id string, a, invF float64, datumCRS string) Ellipsoid {
	b := a
	if invF != 0 {
		b = a - a/invF
	}
	e := Ellipsoid{
		ID:                id,
		SemiMajor:         a,
		SemiMinor:         b,
		InverseFlattening: invF,
		DatumCRS:          datumCRS,
	}
	e.computeAreaConstants()
	return e
}

func syntheticID(a, b float64) string {
	return "PARAMETER:" + formatG(a) + ":" + formatG(b)
}

func formatG(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Flattening returns f = 1/InverseFlattening, which is 0 for a sphere even
// though InverseFlattening itself is +Inf in that case.
func (e Ellipsoid) Flattening() float64 {
	if e.InverseFlattening == 0 {
		return 0
	}
	return 1 / e.InverseFlattening
}

// Q evaluates the GRASS Q(x) series used by the ellipsoidal area kernel.
func (e Ellipsoid) Q(x float64) float64 {
	sinx := math.Sin(x)
	sinx2 := sinx * sinx
	return sinx * (1 + sinx2*(e.qa+sinx2*(e.qb+sinx2*e.qc)))
}

// Qbar evaluates the GRASS Qbar(x) series used by the ellipsoidal area
// kernel.
func (e Ellipsoid) Qbar(x float64) float64 {
	cosx := math.Cos(x)
	cosx2 := cosx * cosx
	return cosx * (e.qbarA + cosx2*(e.qbarB+cosx2*(e.qbarC+cosx2*e.qbarD)))
}

// Qp is Q(π/2).
func (e Ellipsoid) Qp() float64 { return e.qp }

// AE is a²(1-e²), the area-series scale factor.
func (e Ellipsoid) AE() float64 { return e.ae }

// Eref is the total reference surface area |4π·Qp·AE|, used for the
// polar-enclosure correction in the polygon area kernel.
func (e Ellipsoid) Eref() float64 { return e.eref }

func (e *Ellipsoid) computeAreaConstants() {
	a2 := e.SemiMajor * e.SemiMajor
	e2 := 1 - (e.SemiMinor*e.SemiMinor)/a2
	e4 := e2 * e2
	e6 := e4 * e2

	e.ae = a2 * (1 - e2)

	e.qa = (2.0 / 3.0) * e2
	e.qb = (3.0 / 5.0) * e4
	e.qc = (4.0 / 7.0) * e6

	e.qbarA = -1.0 - (2.0/3.0)*e2 - (3.0/5.0)*e4 - (4.0/7.0)*e6
	e.qbarB = (2.0/9.0)*e2 + (2.0/5.0)*e4 + (4.0/7.0)*e6
	e.qbarC = -(3.0/25.0)*e4 - (12.0/35.0)*e6
	e.qbarD = (4.0 / 49.0) * e6

	e.qp = e.Q(math.Pi / 2)
	e.eref = math.Abs(4 * math.Pi * e.qp * e.ae)
}
