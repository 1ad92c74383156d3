package chart

import (
	"fmt"
	"math"
	"strings"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// ProgressBar renders level (clamped to 0-100) as a bar of width cells.
func ProgressBar(level, width int) string {
	if width <= 0 {
		return ""
	}
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := int(math.Round(float64(level) * float64(width) / 100))
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}

// ProgressLine renders "bar  90%".
func ProgressLine(level, width int) string {
	return fmt.Sprintf("%s %3d%%", ProgressBar(level, width), clampInt(level, 0, 100))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
