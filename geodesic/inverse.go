package geodesic

import "math"

// maxInverseIterations bounds the reduced-latitude iteration of the
// Vincenty inverse solution. Near-antipodal point pairs (for example two
// equatorial points 179.9 degrees apart on WGS-84) can fail to converge
// within this cap; callers see that as a
// ConvergenceFailure (sentinel distance -1).
const maxInverseIterations = 20

// inverseTolerance is the convergence threshold on successive values of λ.
const inverseTolerance = 1e-12

// coincidentEpsilon is the tolerance under which two points are treated as
// identical, short-circuiting the iteration (and its σ=0 division).
const coincidentEpsilon = 1e-12

// vincentyInverse solves the inverse geodesic problem for an ellipsoid of
// semi-major axis a, semi-minor axis b and flattening f. Inputs and outputs
// are in radians. converged is false if the λ iteration exhausted
// maxInverseIterations without reaching inverseTolerance.
func vincentyInverse(a, b, f, lat1, lon1, lat2, lon2 float64) (s, azi1, azi2 float64, converged bool) {
	if math.Abs(lat1-lat2) < coincidentEpsilon && math.Abs(lon1-lon2) < coincidentEpsilon {
		return 0, 0, 0, true
	}

	L := lon2 - lon1
	U1 := math.Atan((1 - f) * math.Tan(lat1))
	U2 := math.Atan((1 - f) * math.Tan(lat2))
	sinU1, cosU1 := math.Sin(U1), math.Cos(U1)
	sinU2, cosU2 := math.Sin(U2), math.Cos(U2)

	lambda := L
	lambdaPrev := 2 * math.Pi

	var sinLambda, cosLambda, sinSigma, cosSigma, sigma float64
	var sinAlpha, cosSqAlpha, cos2SigmaM float64
	var tu1, tu2 float64

	iter := maxInverseIterations
	for math.Abs(lambda-lambdaPrev) > inverseTolerance && iter > 0 {
		iter--

		sinLambda = math.Sin(lambda)
		cosLambda = math.Cos(lambda)
		tu1 = cosU2 * sinLambda
		tu2 = cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(tu1*tu1 + tu2*tu2)
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			// equatorial line: cosSqAlpha is 0
			cos2SigmaM = 0
		}
		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaPrev = lambda
		lambda = L + (1-C)*f*sinAlpha*
			(sigma + C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	}

	if iter == 0 {
		return 0, 0, 0, false
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	s = b * A * (sigma - deltaSigma)
	azi1 = math.Atan2(tu1, tu2)
	// Pi is added so azi2 reads as the azimuth from p2 back to p1.
	azi2 = math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda) + math.Pi
	return s, azi1, azi2, true
}
