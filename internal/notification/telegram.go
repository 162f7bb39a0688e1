package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/roamline/TripBooker/internal/domain"
)

// TelegramNotifier mirrors booking transitions into an ops chat. It is one
// sink of the audit fanout and inherits its best-effort contract.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || opsChatID == 0 {
		logger.Warn("telegram bot token or ops chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) Record(ctx context.Context, e domain.AuditEntry) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("action", e.Action))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("action", e.Action))
		return
	}

	text := fmt.Sprintf(
		"*%s*\nBooking: %s\nUser: %s\n%s",
		e.Action, e.BookingID, e.UserID, e.Details,
	)

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("action", e.Action),
			logger.String("error", err.Error()),
		)
	}
}
