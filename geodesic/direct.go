package geodesic

import "math"

// maxProjectedIterations bounds the σ iteration of the "computeSpheroidProject"
// direct solution (D2). The "destination" form (D1, used by Ellipsoid.Direct)
// has no iteration cap, matching the original it was ported from.
const maxProjectedIterations = 999

// projectedTolerance is the relative convergence threshold for D2's σ
// iteration, |σ_prev - σ| / σ.
const projectedTolerance = 1e-9

// directTolerance is the absolute convergence threshold for D1's σ
// iteration, |σ - σ_prev|.
const directTolerance = 1e-12

// vincentyDirect solves the direct geodesic problem. Inputs and the
// returned point are in radians; s12 is in meters. When maxIter is 0 the
// σ iteration runs to directTolerance with no cap (D1, "destination");
// when maxIter is positive it runs to projectedTolerance (relative) or
// maxIter iterations, whichever comes first (D2, "computeSpheroidProject").
func vincentyDirect(a, b, f, lat1, lon1, azi1, s12 float64, maxIter int) (lat2, lon2, azi2 float64) {
	sinAlpha1, cosAlpha1 := math.Sin(azi1), math.Cos(azi1)

	tanU1 := (1 - f) * math.Tan(lat1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := s12 / (b * A)
	var sinSigma, cosSigma, cos2SigmaM, deltaSigma float64

	step := func() {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma = math.Sin(sigma)
		cosSigma = math.Cos(sigma)
		deltaSigma = B * sinSigma * (cos2SigmaM + 0.25*B*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
	}

	if maxIter <= 0 {
		sigmaPrev := 2 * math.Pi
		for math.Abs(sigma-sigmaPrev) > directTolerance {
			step()
			sigmaPrev = sigma
			sigma = s12/(b*A) + deltaSigma
		}
	} else {
		i := 0
		for {
			step()
			sigmaPrev := sigma
			sigma = s12/(b*A) + deltaSigma
			i++
			if i >= maxIter || math.Abs((sigmaPrev-sigma)/sigma) <= projectedTolerance {
				break
			}
		}
	}

	tmp := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	lat2 = math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-f)*math.Sqrt(sinAlpha*sinAlpha+tmp*tmp))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
	L := lambda - (1-C)*f*sinAlpha*(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	lon2 = lon1 + L
	azi2 = math.Atan2(sinAlpha, -tmp)
	return lat2, lon2, azi2
}

// normalizeAzimuth wraps a radian azimuth into [0, 2π), matching D2's
// handling of out-of-range input bearings.
func normalizeAzimuth(azi float64) float64 {
	twoPi := 2 * math.Pi
	azi = math.Mod(azi, twoPi)
	if azi < 0 {
		azi += twoPi
	}
	return azi
}

// DirectProjected solves the direct geodesic problem the way
// "computeSpheroidProject" does: azi1 is in radians and normalized into
// [0, 2π) before use, and the σ iteration is capped at
// maxProjectedIterations using a relative tolerance. Inputs/outputs are in
// radians. Callers are responsible for the |lon|≤180°, |lat|≤85.05115°
// domain guard — this function does not apply it.
func DirectProjected(a, b, f, lat1, lon1, azi1, s12 float64) (lat2, lon2 float64) {
	la2, lo2, _ := vincentyDirect(a, b, f, lat1, lon1, normalizeAzimuth(azi1), s12, maxProjectedIterations)
	return la2, lo2
}
