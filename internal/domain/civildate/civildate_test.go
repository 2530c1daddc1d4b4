package civildate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Should strip year, month and day markers", input: "2025年8月12日", want: "2025/08/12"},
		{name: "Should pad slash separated parts", input: "2025/8/12", want: "2025/08/12"},
		{name: "Should accept dashes", input: "2025-08-12", want: "2025/08/12"},
		{name: "Should accept dots", input: "2025.8.12", want: "2025/08/12"},
		{name: "Should collapse repeated and trailing separators", input: "/2025//08--12/", want: "2025/08/12"},
		{name: "Should keep canonical input as is", input: "2025/08/12", want: "2025/08/12"},
		{name: "Should roll an overflowing day into the next month", input: "2025/8/32", want: "2025/09/01"},
		{name: "Should roll an overflowing month into the next year", input: "2025/13/1", want: "2026/01/01"},
		{name: "Should fall back to generic parsing", input: "2025-08-12T10:30:00Z", want: "2025/08/12"},
		{name: "Should parse month names", input: "August 12, 2025", want: "2025/08/12"},
		{name: "Should return unparseable input unchanged", input: "not a date", want: "not a date"},
		{name: "Should return empty input unchanged", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay("2025年8月12日", "2025/08/12"))
	assert.True(t, SameDay("2025-08-12", "2025/8/12"))
	assert.False(t, SameDay("2025/08/12", "2025/08/13"))
	assert.False(t, SameDay("garbage", "2025/08/12"))
}

func TestFormat(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// 2025-08-11 20:00 UTC is already the 12th in Taipei.
	instant := time.Date(2025, 8, 11, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025/08/12", Format(instant, loc))
	assert.Equal(t, "2025/08/11", Format(instant, time.UTC))
}

func TestLong(t *testing.T) {
	assert.Equal(t, "Tuesday, August 12, 2025", Long("2025/08/12"))
	assert.Equal(t, "Tuesday, August 12, 2025", Long("2025年8月12日"))
	assert.Equal(t, "someday", Long("someday"))
}
