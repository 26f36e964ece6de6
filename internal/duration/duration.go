// Package duration implements the duration codec for track-listing files.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse is returned when a duration token cannot be reduced to two
// numeric components. Callers check it with errors.Is.
var ErrParse = errors.New("duration not parsable")

// Parse converts a human-entered duration token into seconds.
//
// Both `:` and `.` act as component separators. The first two components
// are recombined as "<main>.<fraction>" and parsed as a float; any further
// components are silently discarded, so "3:45:67" yields 3.45. This
// truncation is intentional and matches historical output.
func Parse(text string) (float64, error) {
	parts := strings.Split(strings.ReplaceAll(text, ":", "."), ".")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}

	seconds, err := strconv.ParseFloat(parts[0]+"."+parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	return seconds, nil
}

// Format renders seconds as "<whole>:<hundredths>" with the hundredths
// padded to two digits.
//
// This is NOT a minutes:seconds conversion: the fractional decimal digits
// of the input reappear verbatim as the second field, so 125.7 seconds
// formats as "125:70". The encoding round-trips through Parse only when
// the original input carried exactly two fractional digits. Every export
// ever produced uses this encoding.
func Format(seconds float64) string {
	totalHundredths := int64(math.Round(seconds * 100))
	whole := totalHundredths / 100
	frac := totalHundredths % 100
	if frac < 0 {
		whole--
		frac += 100
	}
	return fmt.Sprintf("%d:%02d", whole, frac)
}
