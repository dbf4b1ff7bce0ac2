// Package timestr converts between human-readable time strings and
// seconds. It understands plain numbers ("90", "1.5"), compact unit
// strings ("1h 30min", "2s 500ms"), verbose unit strings
// ("1 minute 30 seconds"), and timer notation ("01:02:03.250").
package timestr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// unitMillis maps a normalized unit token to its length in milliseconds.
var unitMillis = map[string]float64{
	"d": msPerDay, "day": msPerDay, "days": msPerDay,
	"h": msPerHour, "hour": msPerHour, "hours": msPerHour,
	"m": msPerMinute, "min": msPerMinute, "mins": msPerMinute,
	"minute": msPerMinute, "minutes": msPerMinute,
	"s": msPerSecond, "sec": msPerSecond, "secs": msPerSecond,
	"second": msPerSecond, "seconds": msPerSecond,
	"ms": 1, "millis": 1, "millisecond": 1, "milliseconds": 1,
}

var (
	tokenRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-z]+)`)
	timerRe = regexp.MustCompile(`^(\d+:)?(\d+):(\d{1,2})(\.\d+)?$`)
)

// ToSeconds parses a time string into seconds.
func ToSeconds(timestr string) (float64, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(timestr), ""))
	if norm == "" {
		return 0, fmt.Errorf("empty time string")
	}

	sign := 1.0
	if strings.HasPrefix(norm, "-") {
		sign = -1
		norm = norm[1:]
	}

	if secs, err := strconv.ParseFloat(norm, 64); err == nil {
		return sign * secs, nil
	}
	if secs, ok := timerToSeconds(norm); ok {
		return sign * secs, nil
	}

	var millis float64
	rest := norm
	for rest != "" {
		m := tokenRe.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid time string %q", timestr)
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time string %q", timestr)
		}
		unit, ok := unitMillis[m[2]]
		if !ok {
			return 0, fmt.Errorf("invalid time string %q: unknown unit %q", timestr, m[2])
		}
		millis += value * unit
		rest = rest[len(m[0]):]
	}

	return sign * millis / msPerSecond, nil
}

// timerToSeconds parses "hh:mm:ss.mil" or "mm:ss" notation.
func timerToSeconds(norm string) (float64, bool) {
	m := timerRe.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}

	var hours float64
	if m[1] != "" {
		hours, _ = strconv.ParseFloat(strings.TrimSuffix(m[1], ":"), 64)
	}
	minutes, _ := strconv.ParseFloat(m[2], 64)
	seconds, _ := strconv.ParseFloat(m[3], 64)
	if m[4] != "" {
		frac, _ := strconv.ParseFloat("0"+m[4], 64)
		seconds += frac
	}

	return hours*3600 + minutes*60 + seconds, true
}

// FromSeconds renders seconds as a verbose time string such as
// "1 minute 30 seconds". Values are rounded to the millisecond; zero
// renders as "0 seconds" and negative values get a "- " prefix.
func FromSeconds(secs float64) string {
	millis := int64(math.Round(math.Abs(secs) * msPerSecond))

	var parts []string
	add := func(value int64, singular string) {
		if value == 0 {
			return
		}
		unit := singular
		if value != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", value, unit))
	}

	add(millis/msPerDay, "day")
	add(millis%msPerDay/msPerHour, "hour")
	add(millis%msPerHour/msPerMinute, "minute")
	add(millis%msPerMinute/msPerSecond, "second")
	add(millis%msPerSecond, "millisecond")

	if len(parts) == 0 {
		return "0 seconds"
	}

	result := strings.Join(parts, " ")
	if secs < 0 && millis > 0 {
		result = "- " + result
	}
	return result
}
