package game

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Diamonds picks n random opaque colors for the static diamond row.
func Diamonds(n int, rng *rand.Rand) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	return out
}
