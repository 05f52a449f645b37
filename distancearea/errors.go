package distancearea

import "github.com/pkg/errors"

// Sentinel errors for the error kinds named by the engine's error-handling
// design: configuration failures are surfaced as a boolean from setters,
// transform and convergence failures are recovered locally (logged, zero
// contribution), and the domain guard returns a neutral point without an
// error signal at all. These sentinels exist so tests and callers that do
// capture a log record can match on errors.Is.
var (
	// ErrInvalidEllipsoid is logged when SetEllipsoid is given non-positive
	// or inverted axes.
	ErrInvalidEllipsoid = errors.New("distancearea: invalid ellipsoid axes")

	// ErrUnknownEllipsoidID is logged when SetEllipsoidID can't resolve its
	// argument against the configured catalog.
	ErrUnknownEllipsoidID = errors.New("distancearea: unknown ellipsoid identifier")

	// ErrTransformFailed is what toGeographic wraps, with the vertex and the
	// underlying transform error's message as context, when a vertex fails
	// to project between the source CRS and the geographic datum, letting
	// callers match it with errors.Is regardless of which coordinate or CRS
	// failed. The underlying *transform.Error itself is not in the chain.
	ErrTransformFailed = errors.New("distancearea: coordinate transform failed")

	// ErrConvergenceFailure is logged when the Vincenty inverse kernel
	// exhausts its iteration cap without converging (near-antipodal pairs).
	ErrConvergenceFailure = errors.New("distancearea: vincenty inverse did not converge")
)
