// Package format renders report numbers as display strings.
//
// Rounding is half away from zero at the requested decimal place, computed on the
// shortest decimal representation of the float so 1.005 rounds to 1.01. Non-finite
// values are rendered as NaN / ∞ rather than coerced; callers own any zero guards.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultDecimals is the precision used by Number when a metric has no override.
const DefaultDecimals = 2

// LCOEDecimals is the precision for levelized cost of energy figures.
const LCOEDecimals = 4

var printer = message.NewPrinter(language.English)

// Currency renders whole dollars: "$1,234", "-$50".
func Currency(amount float64) string {
	return currency(amount, 0)
}

// UnitCurrency renders per-unit costs ($/ton) with cents: "$20.00".
func UnitCurrency(amount float64) string {
	return currency(amount, 2)
}

// Number renders value rounded to decimals places with thousands separators.
func Number(value float64, decimals int) string {
	if s, ok := nonFinite(value); ok {
		return s
	}
	neg, digits := fixed(value, decimals)
	if neg {
		return "-" + digits
	}
	return digits
}

// Round rounds value half away from zero at decimals places.
func Round(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(int32(decimals)).InexactFloat64()
}

func currency(amount float64, decimals int) string {
	if s, ok := nonFinite(amount); ok {
		if strings.HasPrefix(s, "-") {
			return "-$" + s[1:]
		}
		return "$" + s
	}
	neg, digits := fixed(amount, decimals)
	if neg {
		return "-$" + digits
	}
	return "$" + digits
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}

// fixed returns the sign and the grouped absolute value with exactly decimals places.
// A value that rounds to zero is never reported as negative.
func fixed(v float64, decimals int) (bool, string) {
	if decimals < 0 {
		decimals = 0
	}
	d := decimal.NewFromFloat(v).Round(int32(decimals))
	neg := d.Sign() < 0
	s := d.Abs().StringFixed(int32(decimals))

	intPart, frac, _ := strings.Cut(s, ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = printer.Sprintf("%d", n)
	} else {
		intPart = group(intPart)
	}
	if frac == "" {
		return neg, intPart
	}
	return neg, intPart + "." + frac
}

// group inserts thousands separators into a digit string too long for int64.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
