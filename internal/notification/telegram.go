package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

// TelegramNotifier posts enrollment and ticket notices to a configured
// announcement channel. With no token or chat id it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram not configured, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEnrolled(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*New enrollment*\n\nEvent: %s\nSport: %s\nParticipant: %s",
		event.Name, event.SportType, user.Fullname,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyUnenrolled(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Enrollment cancelled*\n\nEvent: %s\nParticipant: %s",
		event.Name, user.Fullname,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyTicketCancelled(ctx context.Context, ticket *domain.Ticket, reason string) {
	text := fmt.Sprintf(
		"*Ticket cancelled*\n\nTicket: %s\nReason: %s",
		ticket.TicketNumber, reason,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
