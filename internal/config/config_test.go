package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NOTIFY_TARGETS", "C123,telegram:-100987")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "Asia/Taipei", cfg.Timezone)
	assert.Equal(t, 9*time.Hour, cfg.WorkDuration())
	assert.Equal(t, 15*time.Minute, cfg.LeadDuration())
	assert.Equal(t, 4*time.Hour, cfg.MaxLag())
	assert.Equal(t, time.Minute, cfg.ScanInterval)
	assert.True(t, cfg.FirstClockInOnly)
	assert.Equal(t, []string{"C123", "telegram:-100987"}, cfg.NotifyTargets)
	assert.Equal(t, "Asia/Taipei", cfg.Location().String())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "Should accept a regular configuration",
			cfg:     Config{Timezone: "UTC", WorkHours: 8, LunchMinutes: 60, LeadMinutes: 15, ScanInterval: time.Minute},
			wantErr: false,
		},
		{
			name:    "Should reject lead time longer than the work duration",
			cfg:     Config{Timezone: "UTC", WorkHours: 0, LunchMinutes: 10, LeadMinutes: 15, ScanInterval: time.Minute},
			wantErr: true,
		},
		{
			name:    "Should reject negative values",
			cfg:     Config{Timezone: "UTC", WorkHours: -1, ScanInterval: time.Minute},
			wantErr: true,
		},
		{
			name:    "Should reject a zero scan interval",
			cfg:     Config{Timezone: "UTC", WorkHours: 8},
			wantErr: true,
		},
		{
			name:    "Should reject a sub-second scan interval",
			cfg:     Config{Timezone: "UTC", WorkHours: 8, ScanInterval: 500 * time.Millisecond},
			wantErr: true,
		},
		{
			name:    "Should reject a fractional-second scan interval",
			cfg:     Config{Timezone: "UTC", WorkHours: 8, ScanInterval: 1500 * time.Millisecond},
			wantErr: true,
		},
		{
			name:    "Should accept a one second scan interval",
			cfg:     Config{Timezone: "UTC", WorkHours: 8, ScanInterval: time.Second},
			wantErr: false,
		},
		{
			name:    "Should reject an unknown timezone",
			cfg:     Config{Timezone: "Mars/Olympus", WorkHours: 8, ScanInterval: time.Minute},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
