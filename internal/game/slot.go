// Package game holds the state behind the game screen: the number slots,
// the falling coins and the decorative diamonds. Scheduling lives in the
// tui package; everything here is advanced explicitly.
package game

import (
	"math/rand/v2"
	"strconv"
)

// IdleFace is shown by a slot that is not rotating.
const IdleFace = "♦"

// Slot shows a random number in [0, MaxNumber] while rotating.
type Slot struct {
	MaxNumber int
	value     int
	rotating  bool
}

func NewSlot(maxNumber int) *Slot {
	return &Slot{MaxNumber: maxNumber, value: -1}
}

func (s *Slot) Rotating() bool { return s.rotating }

func (s *Slot) Start() { s.rotating = true }

// Stop halts rotation and puts the diamond back on the face.
func (s *Slot) Stop() {
	s.rotating = false
	s.value = -1
}

// Roll draws a new number; idle slots ignore it.
func (s *Slot) Roll(rng *rand.Rand) {
	if !s.rotating {
		return
	}
	s.value = rng.IntN(s.MaxNumber + 1)
}

// Value returns the number on the face, or -1 when it shows the diamond.
func (s *Slot) Value() int { return s.value }

func (s *Slot) Face() string {
	if s.value < 0 {
		return IdleFace
	}
	return strconv.Itoa(s.value)
}

// Slots is one game's row of slots.
type Slots []*Slot

func NewSlots(n, maxNumber int) Slots {
	out := make(Slots, n)
	for i := range out {
		out[i] = NewSlot(maxNumber)
	}
	return out
}

func (ss Slots) Rotating() bool {
	for _, s := range ss {
		if s.rotating {
			return true
		}
	}
	return false
}

func (ss Slots) StopAll() {
	for _, s := range ss {
		s.Stop()
	}
}
