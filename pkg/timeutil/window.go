// Package timeutil parses the human-friendly time inputs the CLI accepts:
// report windows like "1w" or "3mo", and clock times like "09:00".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback report window used when none is provided.
	DefaultWindow = "1w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"h":      time.Hour,
		"hr":     time.Hour,
		"hrs":    time.Hour,
		"hour":   time.Hour,
		"hours":  time.Hour,
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"wks":    7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"mo":     30 * 24 * time.Hour, // calendar months approximated at 30 days
		"mos":    30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
	}
)

// ParseWindow parses a report window string (for example "1w", "3d", or
// "1mo2w") and returns the equivalent duration along with a canonical,
// compact representation. Empty input means the default window of one week.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}

	return total, FormatWindow(total), nil
}

// Days converts a window duration to a whole number of trailing days, at
// least one.
func Days(d time.Duration) int {
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// FormatWindow renders a duration using week/day/hour tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0h"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0h"
	}
	return strings.Join(parts, "")
}
