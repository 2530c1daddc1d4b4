package entity

import "time"

// ScanResult summarizes one pass of the due scanner.
type ScanResult struct {
	ScanID       string    `json:"scan_id"`
	StartedAt    time.Time `json:"started_at"`
	Scanned      int       `json:"scanned"`
	Due          int       `json:"due"`
	Delivered    int       `json:"delivered"` // entries sent to at least one target
	Expired      int       `json:"expired"`   // entries past the staleness ceiling, not sent
	SendFailures int       `json:"send_failures"`
	MarkFailures int       `json:"mark_failures"`
	Invalid      int       `json:"invalid"`
}
