package plotdata

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// floatPrefix matches the longest leading decimal literal, the way a
	// browser's parseFloat scans its input.
	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	// decimalLiteral matches a whole string that converts to a number.
	decimalLiteral = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)$`)
)

// ParseFloat parses the leading float literal of s and ignores trailing
// text. "NaN" and text with no numeric prefix yield NaN, "Infinity" yields
// +Inf and "-Infinity" yields -Inf.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	return literalValue(m)
}

// toNumber converts a whole string into a number. ok is false when the
// trimmed string is not a decimal literal.
func toNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isJSSpace)
	if s == "" {
		return 0, true
	}
	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	return literalValue(s), true
}

// isJSSpace matches the white space and line terminators a browser skips
// around a numeric literal: Unicode White_Space plus U+FEFF, minus U+0085.
func isJSSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func literalValue(lit string) float64 {
	sign := 1.0
	body := lit
	switch body[0] {
	case '-':
		sign = -1
		body = body[1:]
	case '+':
		body = body[1:]
	}
	if body == "Infinity" {
		return math.Inf(int(sign))
	}
	// Out-of-range literals come back as ±Inf or 0 alongside ErrRange,
	// which is the value we want.
	v, _ := strconv.ParseFloat(body, 64)
	return sign * v
}

// FormatFixed renders x with the given number of decimals the way a
// browser's Number.prototype.toFixed does: exact rounding on the binary
// value with ties away from zero, "NaN"/"Infinity"/"-Infinity" for
// non-finite values, exponent form from 1e21 upward, and a kept minus sign
// for negative values that round to zero.
func FormatFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}
	if math.Abs(x) >= 1e21 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	scaled := new(big.Rat).SetFloat64(x)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled.Mul(scaled, new(big.Rat).SetInt(pow))
	scaled.Add(scaled, big.NewRat(1, 2))
	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	return sign + s
}
