package console

import (
	"fmt"
	"strings"
)

// money renders an American-style dollar amount with thousands separators.
// Amounts of a billion or more round to "$N.NNNB" to keep table columns
// narrow.
func money(amount int) string {
	if amount == 0 {
		return "$0"
	}
	value := amount
	if amount >= 1_000_000_000 {
		value += 500_000
	}
	var segments []string
	for value > 0 {
		segment := value % 1000
		value /= 1000
		if value == 0 {
			segments = append(segments, fmt.Sprintf("%d", segment))
		} else {
			segments = append(segments, fmt.Sprintf("%03d", segment))
		}
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	if amount >= 1_000_000_000 {
		return fmt.Sprintf("$%s.%sB", segments[0], segments[1])
	}
	return "$" + strings.Join(segments, ",")
}

// pad clips or right-pads s to exactly width characters.
func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
