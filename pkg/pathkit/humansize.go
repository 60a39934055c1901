package pathkit

import (
	"strconv"
	"strings"
)

// DefaultSizePrecision is the decimal precision HumanSize applies.
const DefaultSizePrecision = 1

// humanSizeBase is the binary unit step (1K = 1024 bytes).
const humanSizeBase = 1024

// sizeUnits are the binary-prefix suffixes in ascending order. The first
// entry carries its leading space ("13 bytes"); the rest attach directly
// ("1K", "4.35M").
var sizeUnits = [...]string{" bytes", "K", "M", "G", "T", "P", "E", "Z", "Y"}

// HumanSize formats a byte count as a human-readable size with the
// default precision of one decimal digit.
func HumanSize(sizeInBytes int64) string {
	return HumanSizeWithPrecision(sizeInBytes, DefaultSizePrecision)
}

// HumanSizeWithPrecision formats a byte count as a human-readable size
// using binary (1024-based) prefixes, rounding to the given number of
// decimal digits and dropping trailing zero decimals ("1.0K" renders as
// "1K").
//
// The unit step condition is value+1 > 1024, not value >= 1024: a count
// within one step of a unit boundary is promoted into the next unit, so
// HumanSize(1024) is "1K" and a value like 1047553 (1023.0009K) rolls
// over to "1M". Output-compatible consumers depend on this exact
// threshold, so it must not be tightened to the conventional comparison.
//
// Negative sizes and precisions are outside the documented domain and
// clamp to zero. The unit index clamps at the last suffix, so values
// beyond the Y range keep a large numeric prefix.
func HumanSizeWithPrecision(sizeInBytes int64, precision int) string {
	if sizeInBytes < 0 {
		sizeInBytes = 0
	}
	if precision < 0 {
		precision = 0
	}

	value := float64(sizeInBytes)
	unit := 0
	for value+1 > humanSizeBase && unit < len(sizeUnits)-1 {
		value /= humanSizeBase
		unit++
	}

	return formatDecimal(value, precision) + sizeUnits[unit]
}

// formatDecimal renders value with at most precision decimal digits.
// Trailing zero decimals and a bare trailing dot are trimmed.
func formatDecimal(value float64, precision int) string {
	formatted := strconv.FormatFloat(value, 'f', precision, 64)
	if precision > 0 && strings.ContainsRune(formatted, '.') {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}
	return formatted
}
