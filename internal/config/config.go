package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	TelegramBotToken   string `envconfig:"TELEGRAM_BOT_TOKEN"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./clockin.db"`
	Port               string `envconfig:"PORT" default:"3000"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	Timezone     string `envconfig:"TIMEZONE" default:"Asia/Taipei"`
	WorkHours    int    `envconfig:"WORK_HOURS" default:"8"`
	LunchMinutes int    `envconfig:"LUNCH_MINUTES" default:"60"`
	LeadMinutes  int    `envconfig:"LEAD_MINUTES" default:"15"`

	ScanInterval  time.Duration `envconfig:"SCAN_INTERVAL" default:"1m"`
	MaxLagMinutes int           `envconfig:"MAX_LAG_MINUTES" default:"240"`

	// NotifyTargets is a comma separated list, e.g. "slack:C0123,telegram:-100987".
	// Targets without a prefix are treated as Slack destinations.
	NotifyTargets []string `envconfig:"NOTIFY_TARGETS"`
	AdminSecret   string   `envconfig:"ADMIN_SECRET"`

	FirstClockInOnly bool `envconfig:"FIRST_CLOCK_IN_ONLY" default:"true"`
	SendRatePerSec   int  `envconfig:"SEND_RATE_PER_SEC" default:"1"`

	location *time.Location
}

// Load reads the process environment into a Config and resolves the timezone.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WorkHours < 0 || c.LunchMinutes < 0 || c.LeadMinutes < 0 || c.MaxLagMinutes < 0 {
		return fmt.Errorf("invalid configuration: work hours, lunch, lead and max lag must not be negative")
	}

	// the scheduler ticks on whole seconds and would silently round anything else
	if c.ScanInterval < time.Second || c.ScanInterval%time.Second != 0 {
		return fmt.Errorf("invalid configuration: SCAN_INTERVAL must be a whole number of seconds, at least 1s, got %s", c.ScanInterval)
	}

	if c.LeadDuration() > c.WorkDuration() {
		return fmt.Errorf("invalid configuration: LEAD_MINUTES (%d) exceeds the work duration (%s)", c.LeadMinutes, c.WorkDuration())
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc

	return nil
}

// WorkDuration is the minimum time between clock-in and leaving, lunch included.
func (c *Config) WorkDuration() time.Duration {
	return time.Duration(c.WorkHours)*time.Hour + time.Duration(c.LunchMinutes)*time.Minute
}

func (c *Config) LeadDuration() time.Duration {
	return time.Duration(c.LeadMinutes) * time.Minute
}

func (c *Config) MaxLag() time.Duration {
	return time.Duration(c.MaxLagMinutes) * time.Minute
}

// Location returns the civil timezone. It falls back to UTC when Validate was never called.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
