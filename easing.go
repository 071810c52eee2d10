package unfold

import "math"

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// AccelerateDecelerate starts slowly, speeds up through the middle and
// slows down again at the end. It is symmetric around t = 0.5.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}
