package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/clockin-bot/internal/domain/slack"
)

// runCommand executes a parsed command for the sender and returns the reply text.
// Both the slash command and the chat webhook reply with the same wording.
func runCommand(ctx context.Context, attendance contract.AttendanceService, cmd slackcmd.CommandType, recipientID string) (string, error) {
	switch cmd {
	case slackcmd.CmdClockIn:
		out, err := attendance.ClockIn(ctx, recipientID)
		if err != nil {
			return "", err
		}
		return clockInText(out), nil

	case slackcmd.CmdLeave:
		if _, err := attendance.Leave(ctx, recipientID); err != nil {
			return "", err
		}
		return "📅 Leave recorded\nToday is now marked as a day off.", nil

	case slackcmd.CmdStatus:
		records, err := attendance.TodayRecords(ctx, recipientID)
		if err != nil {
			return "", err
		}
		return statusText(records), nil

	case slackcmd.CmdHelp:
		return slackcmd.GetHelpText(), nil

	default:
		return slackcmd.MenuHint(), nil
	}
}

func clockInText(out *entity.ClockIn) string {
	msg := fmt.Sprintf("✅ Clocked in\n🕗 Start time: %s\n🕔 Earliest clock-out: %s", out.StartTime, out.OffTime)
	if out.Scheduled {
		msg += "\n⏰ You will get a reminder shortly before."
	}
	return msg
}

func statusText(records []*entity.AttendanceRecord) string {
	if len(records) == 0 {
		return "No records for today yet. Use `/clock in` to clock in."
	}

	var b strings.Builder
	b.WriteString("*Today:*\n")
	for _, r := range records {
		if r.Kind() == entity.KindLeave {
			b.WriteString("• 📅 Day off\n")
			continue
		}
		fmt.Fprintf(&b, "• 🕗 %s, earliest clock-out %s\n", r.StartTime, r.OffTime)
	}
	return b.String()
}

func errorText(message string) string {
	return fmt.Sprintf("❌ %s", message)
}
