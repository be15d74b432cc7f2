// Package contrast computes WCAG 2.x colour-contrast ratios for token
// values, for checking that resolved colour pairs stay readable.
package contrast

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Level is a WCAG conformance level for normal body text.
type Level string

const (
	LevelFail    Level = "fail"
	LevelAALarge Level = "AA-large"
	LevelAA      Level = "AA"
	LevelAAA     Level = "AAA"
)

// Luminance returns the WCAG relative luminance of a hex colour
// ("#rgb" or "#rrggbb").
func Luminance(hex string) (float64, error) {
	c, err := colorful.Hex(strings.TrimSpace(strings.ToLower(hex)))
	if err != nil {
		return 0, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Ratio returns the WCAG contrast ratio between two hex colours, in
// the range [1, 21]. Order of the arguments does not matter.
func Ratio(fg, bg string) (float64, error) {
	lf, err := Luminance(fg)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(bg)
	if err != nil {
		return 0, err
	}

	hi, lo := lf, lb
	if lo > hi {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05), nil
}

// Grade classifies a contrast ratio for normal body text: 7.0 for AAA,
// 4.5 for AA, 3.0 for large-text AA.
func Grade(ratio float64) Level {
	switch {
	case ratio >= 7.0:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	case ratio >= 3.0:
		return LevelAALarge
	default:
		return LevelFail
	}
}
