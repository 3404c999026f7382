// Package random provides the weighted random primitives used by the
// password generator. All draws come from crypto/rand, so the package is
// safe for concurrent use.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"strings"
)

// unit returns a uniform float64 in [0, 1) with 53 bits of precision.
func unit() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; there is no sensible value to generate passwords
		// from at that point.
		panic("random: entropy source unavailable: " + err.Error())
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// raw implements the repeated-draw narrowing shared by Rand and RandFloat.
// Starting from max, each iteration draws a uniform fraction of the remaining
// [min, ceiling] range. Positive weight reflects the result so that more
// iterations push it toward max; negative weight pushes toward min.
func raw(max, min, weight int) float64 {
	if max == 0 {
		max = 9 // legacy default range
	}
	if weight == 0 {
		weight = 1
	}

	ceiling := float64(max)
	iterations := weight
	if iterations < 0 {
		iterations = -iterations
	}
	for i := 0; i < iterations; i++ {
		ceiling = unit()*(ceiling-float64(min)) + float64(min)
	}

	if weight > 0 {
		ceiling = float64(max) - (ceiling - float64(min))
	}
	return ceiling
}

// Rand returns a random integer in [min, max]. Positive weight biases the
// result toward max, negative toward min; the absolute value sets how strong
// the bias is. A weight of 0 behaves like 1 (a single unbiased draw). A max
// of 0 selects the legacy default range of [min, 9].
func Rand(max, min, weight int) int {
	return int(math.Round(raw(max, min, weight)))
}

// RandFloat is Rand with the result rounded to the given number of decimal
// places instead of to an integer.
func RandFloat(max, min, weight, decimals int) float64 {
	v := raw(max, min, weight)
	if decimals <= 0 {
		return math.Round(v)
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// Chance reports whether an event with the given percentage probability
// occurs on this draw.
func Chance(percent int) bool {
	return ChanceWeighted(percent, 1)
}

// ChanceWeighted is Chance with a weighted draw.
func ChanceWeighted(percent, weight int) bool {
	return Rand(100, 1, weight) <= percent
}

// Below returns a random integer in [0, n). It returns 0 when n <= 0.
func Below(n int) int {
	if n <= 0 {
		return 0
	}
	// Rejection sampling to avoid modulo bias.
	var buf [8]byte
	limit := math.MaxUint64 - math.MaxUint64%uint64(n)
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			panic("random: entropy source unavailable: " + err.Error())
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

// PickOne selects one item from a space-separated list with an unweighted
// draw.
func PickOne(items string) string {
	return Pick(items, 1, " ")
}

// Pick splits items on delim and selects one entry with a weighted draw.
// The selected entry is returned with surrounding whitespace trimmed.
func Pick(items string, weight int, delim string) string {
	list := strings.Split(items, delim)
	if len(list) == 0 {
		return ""
	}
	if len(list) == 1 {
		return strings.TrimSpace(list[0])
	}
	index := Rand(len(list)-1, 0, weight)
	return strings.TrimSpace(list[index])
}

// PickChar selects one character from chars with a weighted draw and returns
// it as a one-character string. Weight 0 behaves like 1, matching Rand.
func PickChar(chars string, weight int) string {
	if chars == "" {
		return ""
	}
	index := Rand(len(chars), 1, weight) - 1
	return string(chars[index])
}
