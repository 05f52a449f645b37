package ellipsoid

import "github.com/pkg/errors"

// ErrUnknownEllipsoid is returned by a Catalog when an identifier has no
// matching entry.
var ErrUnknownEllipsoid = errors.New("ellipsoid: unknown identifier")

// Params is what a Catalog returns for a known ellipsoid identifier,
// mirroring the external ellipsoid catalog's lookup(id) contract from the
// spec's consumed interfaces.
type Params struct {
	SemiMajor         float64
	InverseFlattening float64
	DatumCRS          string
	Valid             bool
}

// Catalog resolves a named ellipsoid to its defining parameters. It is a
// process-wide, read-only dependency — the default implementation is a
// small fixture table, injected so tests can substitute their own.
type Catalog interface {
	Lookup(id string) (Params, error)
}

// StaticCatalog is a Catalog backed by an in-memory table, suitable both as
// the package default and as a test fixture.
type StaticCatalog map[string]Params

// Lookup implements Catalog.
func (c StaticCatalog) Lookup(id string) (Params, error) {
	p, ok := c[id]
	if !ok || !p.Valid {
		return Params{}, errors.Wrapf(ErrUnknownEllipsoid, "id %q", id)
	}
	return p, nil
}

// Default is the process-wide ellipsoid catalog used when an engine isn't
// configured with a different one. It covers the common reference
// ellipsoids used across geodetic and GIS work.
var Default Catalog = StaticCatalog{
	"WGS84":             {SemiMajor: 6378137.0, InverseFlattening: 298.257223563, DatumCRS: "EPSG:4326", Valid: true},
	"GRS80":             {SemiMajor: 6378137.0, InverseFlattening: 298.257222101, DatumCRS: "EPSG:4019", Valid: true},
	"WGS72":             {SemiMajor: 6378135.0, InverseFlattening: 298.26, DatumCRS: "EPSG:4322", Valid: true},
	"INTERNATIONAL1924": {SemiMajor: 6378388.0, InverseFlattening: 297.0, DatumCRS: "EPSG:4022", Valid: true},
	"CLARKE1866":        {SemiMajor: 6378206.4, InverseFlattening: 294.978698213898, DatumCRS: "EPSG:4008", Valid: true},
	"CLARKE1880":        {SemiMajor: 6378249.145, InverseFlattening: 293.465, DatumCRS: "EPSG:4034", Valid: true},
	"BESSEL1841":        {SemiMajor: 6377397.155, InverseFlattening: 299.1528128, DatumCRS: "EPSG:4004", Valid: true},
	"AIRY1830":          {SemiMajor: 6377563.396, InverseFlattening: 299.3249646, DatumCRS: "EPSG:4001", Valid: true},
	"SPHERE":            {SemiMajor: 6371008.7714, InverseFlattening: 0, DatumCRS: "EPSG:4047", Valid: true},
}

// Lookup resolves id against the Default catalog.
func Lookup(id string) (Params, error) {
	return Default.Lookup(id)
}
