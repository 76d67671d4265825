package morph

import "math"

// Mismatch is the score of pairing two commands whose kinds are neither equal
// nor convertible into one another.
const Mismatch = -1

// referenceDiagonal is the diagonal of the 24×24 viewport that unscaled
// scores are calibrated for.
var referenceDiagonal = math.Hypot(24, 24)

// Score rates how well two commands correspond. Commands of incompatible
// kinds score [Mismatch]. Compatible commands score 1/max(1, d), where d is
// the distance between their end points, so nearby commands score higher.
//
// Score is symmetric.
func Score(a, b Command) float64 {
	return scoreScaled(a, b, 1)
}

// ScaleForViewport returns a distance scale for [Options.DistanceScale] that
// normalizes end point distances of shapes drawn in a w×h viewport. A 24×24
// viewport has a scale of 1.
func ScaleForViewport(w, h float64) float64 {
	d := math.Hypot(w, h)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 1
	}
	return d / referenceDiagonal
}

func scoreScaled(a, b Command, scale float64) float64 {
	if a.Kind != b.Kind && !a.CanConvertTo(b.Kind) && !b.CanConvertTo(a.Kind) {
		return Mismatch
	}
	return 1 / max(1, a.End().Distance(b.End())/scale)
}
