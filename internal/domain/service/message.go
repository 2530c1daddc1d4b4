package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain"
	"github.com/diegoclair/clockin-bot/internal/domain/civildate"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
)

func reminderText(entry *entity.ScheduleEntry, loc *time.Location) string {
	return fmt.Sprintf("⏰ *Clock-out reminder*\n\n👤 %s\n📅 %s\n🕗 Clocked in: %s\n🕔 Earliest clock-out: %s",
		entry.RecipientID,
		civildate.Long(entry.CivilDate),
		entry.StartTime,
		entry.OffAt.In(loc).Format(domain.TimeOfDayLayout),
	)
}
