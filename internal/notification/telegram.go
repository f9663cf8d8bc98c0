package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, tutor *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*New session request*\n\n"+"Subject: %s\n"+"Time (UTC): %s\n"+"Duration: %d min\n\n"+"Accept or decline the request in the app.",
		booking.Subject,
		booking.ScheduledAt.Format("02.01.2006 15:04"),
		booking.Duration,
	)
	n.send(ctx, tutor.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingAccepted(ctx context.Context, student *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Session accepted!*\n\n"+"Subject: %s\n"+"Time (UTC): %s\n"+"Duration: %d min",
		booking.Subject,
		booking.ScheduledAt.Format("02.01.2006 15:04"),
		booking.Duration,
	)
	if booking.MeetingLink != "" {
		text += fmt.Sprintf("\nMeeting link: %s", booking.MeetingLink)
	}
	n.send(ctx, student.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingDeclined(ctx context.Context, student *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Session request declined*\n\n"+"Subject: %s\n"+"Time (UTC): %s",
		booking.Subject,
		booking.ScheduledAt.Format("02.01.2006 15:04"),
	)
	if booking.CancelReason != "" {
		text += fmt.Sprintf("\nReason: %s", booking.CancelReason)
	}
	n.send(ctx, student.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Session cancelled*\n\n"+"Subject: %s\n"+"Time (UTC): %s",
		booking.Subject,
		booking.ScheduledAt.Format("02.01.2006 15:04"),
	)
	if booking.CancelReason != "" {
		text += fmt.Sprintf("\nReason: %s", booking.CancelReason)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
