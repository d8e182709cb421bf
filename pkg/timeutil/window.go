package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultWindow is the journal window used when none is provided.
	DefaultWindow = "30d"

	// Unbounded is the label of a window with no lower bound.
	Unbounded = "all"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitDays      = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseWindow parses a human-friendly day window such as "7", "30d", "1w" or
// "1w3d" and returns the number of days together with a canonical label.
// "all" (or "unbounded") yields zero days and the Unbounded label. An empty
// input falls back to DefaultWindow.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}
	switch trimmed {
	case Unbounded, "unbounded", "all-time", "alltime":
		return 0, Unbounded, nil
	}

	remaining := trimmed
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * per
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero days")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a day count as "<n>d", or Unbounded for zero.
func FormatWindow(days int) string {
	if days <= 0 {
		return Unbounded
	}
	return fmt.Sprintf("%dd", days)
}
