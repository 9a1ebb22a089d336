package bot

import (
	"github.com/Nik4Low/KGTUbot/core/telegram/helpers"
	"github.com/Nik4Low/KGTUbot/internal/conversation"
	"github.com/Nik4Low/KGTUbot/internal/schedule"

	tele "gopkg.in/telebot.v4"
)

// handlers adapts the conversation machine to telebot handlers.
type handlers struct {
	machine *conversation.Machine
}

func newHandlers(machine *conversation.Machine) *handlers {
	return &handlers{machine: machine}
}

func (h *handlers) send(c tele.Context, reply conversation.Reply) error {
	var markup *tele.ReplyMarkup
	if reply.ShowMenu {
		markup = menuMarkup()
	}
	if reply.Markdown {
		return helpers.SendMD(c, reply.Text, markup)
	}
	return helpers.SendPlain(c, reply.Text, markup)
}

// Start handles the start command.
func (h *handlers) Start(c tele.Context) error {
	var firstName string
	if sender := c.Sender(); sender != nil {
		firstName = sender.FirstName
	}
	return h.send(c, h.machine.Start(senderID(c), firstName))
}

// ChangeGroup handles the change-group command.
func (h *handlers) ChangeGroup(c tele.Context) error {
	return h.send(c, h.machine.ChangeGroup(senderID(c)))
}

// TextHandler receives all non-command text. Satisfies the router's
// conversation contract.
func (h *handlers) TextHandler(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	return h.send(c, h.machine.Text(ctx, senderID(c), c.Text()))
}

// Menu returns the handler serving one schedule view.
func (h *handlers) Menu(view schedule.View) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := helpers.BuildContext(c)
		return h.send(c, h.machine.Menu(ctx, senderID(c), view))
	}
}

// UnknownCallback rejects unrecognized menu payloads with a toast.
func (h *handlers) UnknownCallback(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "Неизвестная команда"})
}

func senderID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}
