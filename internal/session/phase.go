package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	werrors "github.com/dygy/wavegen/internal/errors"
)

// ParsePhase converts a user-entered phase expression to radians.
// Accepted forms: a plain number ("1.57"), a fraction ("3.14/2"), a
// degree suffix ("90deg", "90d") or an explicit unit prefix ("d:90",
// "r:1.57").
func ParsePhase(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("parse phase %q: %w", input, werrors.ErrBadPhase)
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "r:"):
		v, err := strconv.ParseFloat(strings.TrimSpace(s[2:]), 64)
		if err != nil {
			return 0, fmt.Errorf("parse phase %q: %w", input, werrors.ErrBadPhase)
		}
		return v, nil

	case strings.HasPrefix(lower, "d:"):
		deg, err := strconv.ParseFloat(strings.TrimSpace(s[2:]), 64)
		if err != nil {
			return 0, fmt.Errorf("parse phase %q: %w", input, werrors.ErrBadPhase)
		}
		return deg * math.Pi / 180, nil
	}

	// "90deg" and shorthand "90d" both read as degrees
	if i := strings.Index(lower, "deg"); i >= 0 {
		return parseDegrees(s[:i], input)
	}
	if strings.HasSuffix(lower, "d") {
		return parseDegrees(s[:len(s)-1], input)
	}

	// fraction form, e.g. "3.14/2"
	if num, den, ok := strings.Cut(s, "/"); ok {
		a, errA := strconv.ParseFloat(strings.TrimSpace(num), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errA != nil || errB != nil || b == 0 {
			return 0, fmt.Errorf("parse phase %q: %w", input, werrors.ErrBadPhase)
		}
		return a / b, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse phase %q: %w", input, werrors.ErrBadPhase)
	}
	return v, nil
}

func parseDegrees(num, input string) (float64, error) {
	deg, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("parse phase %q: %w", input, werrors.ErrBadPhase)
	}
	return deg * math.Pi / 180, nil
}
