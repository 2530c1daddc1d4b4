// Package civildate normalizes calendar date strings so that dates written by
// different clients (or typed by hand in the store) compare as the same day.
package civildate

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/diegoclair/clockin-bot/internal/domain"
)

var markerReplacer = strings.NewReplacer(
	"年", "/",
	"月", "/",
	"日", "",
	"號", "",
	"号", "",
	"-", "/",
	".", "/",
	" ", "/",
	"\t", "/",
)

// Normalize renders any supported date string as YYYY/MM/DD.
// Input that cannot be understood is returned unchanged.
func Normalize(s string) string {
	cleaned := markerReplacer.Replace(strings.TrimSpace(s))
	for strings.Contains(cleaned, "//") {
		cleaned = strings.ReplaceAll(cleaned, "//", "/")
	}
	cleaned = strings.Trim(cleaned, "/")

	parts := strings.SplitN(cleaned, "/", 4)
	if len(parts) >= 3 {
		if nums, ok := atoi3(parts[:3]); ok {
			// time.Date rolls overflowing days and months into the next period.
			return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC).Format(domain.CivilDateLayout)
		}
	}

	if t, err := dateparse.ParseAny(strings.TrimSpace(s)); err == nil {
		return t.Format(domain.CivilDateLayout)
	}

	return s
}

func atoi3(parts []string) ([3]int, bool) {
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// SameDay compares two dates by their normalized text, not by instant.
func SameDay(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Format renders t as a canonical civil date in loc.
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.CivilDateLayout)
}

// Long renders a civil date in its long display form, e.g. "Tuesday, August 12, 2025".
func Long(civilDate string) string {
	t, err := time.Parse(domain.CivilDateLayout, Normalize(civilDate))
	if err != nil {
		return civilDate
	}
	return t.Format(domain.LongDateLayout)
}
