// Package utils holds small helpers shared across modules.
package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var compactDurationRe = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseDuration parses compact duration syntax like "30s", "10m", "2h", "3d".
// Rejection is a configuration error: nothing is mutated and the caller gets
// a descriptive reason.
func ParseDuration(s string) (time.Duration, error) {
	m := compactDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q: use a format like 30s, 10m, 2h, 3d", s)
	}

	var value time.Duration
	if _, err := fmt.Sscanf(m[1], "%d", &value); err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch m[2] {
	case "s":
		return value * time.Second, nil
	case "m":
		return value * time.Minute, nil
	case "h":
		return value * time.Hour, nil
	default:
		return value * 24 * time.Hour, nil
	}
}

// FormatDuration renders a duration in the compact syntax ParseDuration
// accepts, using the largest unit that divides it evenly.
func FormatDuration(d time.Duration) string {
	day := 24 * time.Hour
	switch {
	case d >= day && d%day == 0:
		return fmt.Sprintf("%dd", d/day)
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}

var whenParser = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}()

// ParseTimeSpec resolves a user-supplied time specification into an absolute
// time. Compact duration syntax ("10m") is tried first and interpreted as an
// offset from base; anything else goes through natural-language parsing
// ("tomorrow at 9am"). Errors follow ParseDuration's configuration-error
// semantics.
func ParseTimeSpec(spec string, base time.Time) (time.Time, error) {
	if d, err := ParseDuration(spec); err == nil {
		return base.Add(d), nil
	}

	result, err := whenParser.Parse(spec, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time spec %q: %w", spec, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("unrecognized time spec %q", spec)
	}
	return result.Time, nil
}
