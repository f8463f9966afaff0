package model

import (
	"errors"
	"strconv"
	"strings"
)

// Bounds for a game. Out-of-range input is clamped, never rejected.
const (
	MinSlots     = 1
	MaxSlots     = 10
	MinMaxNumber = 10
	MaxMaxNumber = 1000

	DefaultSlots     = 5
	DefaultMaxNumber = 100
)

// Setup is what the player picks before a game starts.
type Setup struct {
	Slots     int
	MaxNumber int
}

// ParseSetup reads the two setup fields. Empty or non-numeric text uses the
// field's default; every value is clamped into range.
func ParseSetup(slots, maxNumber string) Setup {
	return Setup{
		Slots:     clamp(parseOr(slots, DefaultSlots), MinSlots, MaxSlots),
		MaxNumber: clamp(parseOr(maxNumber, DefaultMaxNumber), MinMaxNumber, MaxMaxNumber),
	}
}

func parseOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Atoi saturates on overflow, which still clamps the right way.
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return fallback
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
