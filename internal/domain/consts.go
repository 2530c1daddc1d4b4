package domain

import "errors"

// Display layouts
const (
	TimeOfDayLayout = "15:04"
	CivilDateLayout = "2006/01/02"
	LongDateLayout  = "Monday, January 2, 2006"
)

// LeaveMarker fills the off-time cell of an attendance row recorded as a day off.
const LeaveMarker = "On leave"

// Schedule row notified flag as stored in the notified cell.
const (
	FlagTrue  = "TRUE"
	FlagFalse = "FALSE"
)

// Target prefixes accepted in NOTIFY_TARGETS and reply destinations.
const (
	SlackTargetPrefix    = "slack:"
	TelegramTargetPrefix = "telegram:"
)

var (
	ErrInvalidEntry  = errors.New("invalid schedule entry")
	ErrUnknownTarget = errors.New("unknown notification target")
)
