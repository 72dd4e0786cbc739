package math3d

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// WrapAngle returns the given angle (in radians) folded into (-Pi, Pi].
func WrapAngle(rads float64) float64 {
	a := math.Mod(rads+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
