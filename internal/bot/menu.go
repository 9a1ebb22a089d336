package bot

import (
	"github.com/Nik4Low/KGTUbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Callback keys of the fixed schedule menu.
const (
	cbToday    = "schedule_today"
	cbTomorrow = "schedule_tomorrow"
	cbWeek     = "schedule_week"
)

// menuMarkup builds the three-button schedule menu shown with every prompt.
func menuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Расписание на сегодня", Unique: cbToday},
		{Text: "Расписание на завтра", Unique: cbTomorrow},
		{Text: "Расписание на неделю", Unique: cbWeek},
	})
}
