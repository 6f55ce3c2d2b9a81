package bot

import (
	"context"
	"encoding/json"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ivanoskov/health_bot/internal/dialog"
)

// Bot транспортный слой: принимает апдейты Telegram, отдает их диалоговому
// менеджеру и отправляет получившиеся ответы
type Bot struct {
	api     *tgbotapi.BotAPI
	dialogs *dialog.Manager
	metrics *Metrics
}

func NewBot(token string, dialogs *dialog.Manager, metrics *Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		dialogs: dialogs,
		metrics: metrics,
	}, nil
}

// Start запускает бота в режиме long polling. Каждый апдейт обрабатывается
// в своей горутине: пользователи не ждут друг друга, порядок внутри одного
// пользователя обеспечивает dialog.Manager.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	slog.Info("bot started", "username", b.api.Self.UserName)
	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

// HandleWebhook точка входа для обработки входящих webhook-обновлений
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return err
	}

	b.handleUpdate(update)
	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.From == nil {
		return
	}

	// Паника одного обработчика не должна ронять процесс и чужие сессии
	defer func() {
		if r := recover(); r != nil {
			b.metrics.ErrorsTotal.Inc()
			slog.Error("handler panicked", "user", message.From.ID, "panic", r)
			b.send(message.Chat.ID, dialog.Reply{Text: "Что-то пошло не так, попробуйте еще раз"})
		}
	}()

	b.metrics.MessagesProcessed.Inc()
	slog.Info("received message", "user", message.From.ID, "text", message.Text)

	ctx := context.Background()
	var replies []dialog.Reply
	if message.IsCommand() {
		b.metrics.CommandsProcessed.WithLabelValues(message.Command()).Inc()
		replies = b.dialogs.HandleCommand(ctx, message.From.ID, message.Command())
	} else {
		replies = b.dialogs.HandleText(ctx, message.From.ID, message.Text)
	}

	for _, reply := range replies {
		b.send(message.Chat.ID, reply)
	}
}

func (b *Bot) send(chatID int64, reply dialog.Reply) {
	if len(reply.Photo) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  reply.PhotoName,
			Bytes: reply.Photo,
		})
		photo.Caption = reply.Text
		if _, err := b.api.Send(photo); err != nil {
			b.metrics.ErrorsTotal.Inc()
			slog.Error("failed to send photo", "chat", chatID, "error", err)
		}
		return
	}

	if reply.Text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.ShowMenu {
		msg.ReplyMarkup = mainKeyboard()
	}
	if _, err := b.api.Send(msg); err != nil {
		b.metrics.ErrorsTotal.Inc()
		slog.Error("failed to send message", "chat", chatID, "error", err)
	}
}
