package game

import (
	"math/rand/v2"
	"time"
)

// Fall durations are drawn uniformly from this range.
const (
	MinFall = time.Second
	MaxFall = 3 * time.Second
)

// Coin falls from the top row to the bottom row over Frames frames.
type Coin struct {
	Col    int
	Frame  int
	Frames int
}

// Row maps the coin's progress onto a field of the given height.
func (c Coin) Row(height int) int {
	if height <= 1 || c.Frames <= 0 {
		return 0
	}
	return min(height-1, c.Frame*(height-1)/c.Frames)
}

// CoinField tracks the coins currently falling across the game area.
type CoinField struct {
	rng           *rand.Rand
	frameInterval time.Duration
	width         int
	height        int
	coins         []Coin
}

func NewCoinField(rng *rand.Rand, frameInterval time.Duration) *CoinField {
	return &CoinField{rng: rng, frameInterval: frameInterval}
}

// Resize drops coins that no longer fit horizontally.
func (f *CoinField) Resize(width, height int) {
	f.width, f.height = width, height
	kept := f.coins[:0]
	for _, c := range f.coins {
		if c.Col < width {
			kept = append(kept, c)
		}
	}
	f.coins = kept
}

func (f *CoinField) Size() (int, int) { return f.width, f.height }

// Spawn drops a new coin at a random column. It does nothing on an empty field.
func (f *CoinField) Spawn() {
	if f.width <= 0 || f.height <= 0 {
		return
	}
	fall := MinFall + time.Duration(f.rng.Int64N(int64(MaxFall-MinFall)+1))
	frames := max(1, int((fall+f.frameInterval-1)/f.frameInterval))
	f.coins = append(f.coins, Coin{Col: f.rng.IntN(f.width), Frames: frames})
}

// Step advances every coin one frame and removes those that have landed.
func (f *CoinField) Step() {
	kept := f.coins[:0]
	for _, c := range f.coins {
		c.Frame++
		if c.Frame <= c.Frames {
			kept = append(kept, c)
		}
	}
	f.coins = kept
}

func (f *CoinField) Coins() []Coin { return f.coins }
