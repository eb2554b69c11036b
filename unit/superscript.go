package unit

import (
	"strconv"
	"strings"
)

var superscripts = map[rune]rune{
	'-': '⁻',
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
}

// Superscript renders an exponent with superscript glyphs. A power of exactly
// 1 renders empty, so "meter¹" displays as "meter".
func Superscript(power int) string {
	if power == 1 {
		return ""
	}

	var b strings.Builder
	for _, r := range strconv.Itoa(power) {
		b.WriteRune(superscripts[r])
	}

	return b.String()
}

// term is one displayable factor of a unit: a name or abbreviation together
// with its exponent.
type term struct {
	text  string
	power int
}

// joinTerms renders factors in slash form: positive powers dot-joined, then a
// "/" and the negative powers at their absolute exponents. When every power
// has the same sign the terms are dot-joined with signed superscripts, e.g.
// "s⁻¹" for an inverse second.
func joinTerms(terms []term) string {
	var pos, neg []term
	for _, t := range terms {
		if t.power > 0 {
			pos = append(pos, t)
		} else {
			neg = append(neg, t)
		}
	}

	if len(pos) == 0 || len(neg) == 0 {
		parts := make([]string, 0, len(terms))
		for _, t := range terms {
			parts = append(parts, t.text+Superscript(t.power))
		}
		return strings.Join(parts, "·")
	}

	num := make([]string, 0, len(pos))
	for _, t := range pos {
		num = append(num, t.text+Superscript(t.power))
	}

	den := make([]string, 0, len(neg))
	for _, t := range neg {
		den = append(den, t.text+Superscript(-t.power))
	}

	return strings.Join(num, "·") + "/" + strings.Join(den, "·")
}
