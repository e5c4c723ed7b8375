package geo

import "math"

// Distance returns the planar distance in meters between two projected
// points.
func Distance(e1, n1, e2, n2 float64) float64 {
	return math.Hypot(e2-e1, n2-n1)
}

// Azimuth returns the bearing in degrees from the first projected point
// to the second, measured clockwise from north and normalized to [0, 360).
func Azimuth(e1, n1, e2, n2 float64) float64 {
	deg := math.Atan2(e2-e1, n2-n1) * (180.0 / math.Pi)
	if deg < 0 {
		deg += 360.0
	}

	return deg
}
