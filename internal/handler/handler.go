package handler

import (
	"strings"

	"faqbot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires the dialog engine to the Telegram transport
type Handler struct {
	bot    *tele.Bot
	engine *dialog.Engine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, engine *dialog.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		engine: engine,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdmin)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle(tele.OnText, h.handleText)
}

func (h *Handler) handleStart(c tele.Context) error {
	return h.reply(c, h.engine.Start(c.Sender().ID))
}

func (h *Handler) handleAdmin(c tele.Context) error {
	return h.reply(c, h.engine.Admin(c.Sender().ID))
}

func (h *Handler) handleCancel(c tele.Context) error {
	return h.reply(c, h.engine.Cancel(c.Sender().ID))
}

func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Unknown commands fall through telebot to OnText; drop them here so
	// they are not mistaken for category names
	if strings.HasPrefix(text, "/") && text != dialog.CancelCommand {
		h.logger.Debug("Ignoring unknown command",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("text", text),
		)
		return nil
	}

	return h.reply(c, h.engine.Handle(c.Sender().ID, text))
}

// reply renders the engine's response: the choices become a reply
// keyboard, one button per row
func (h *Handler) reply(c tele.Context, resp dialog.Response) error {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	rows := make([]tele.Row, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		rows = append(rows, markup.Row(markup.Text(choice)))
	}
	markup.Reply(rows...)

	return c.Send(resp.Text, markup)
}
