package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot             sender
	verifiersChatID int64
	logger          logger.Logger
}

// NewTelegramNotifier returns a notifier that only logs when token is empty.
// verifiersChatID receives the pending backlog digest; zero disables it.
func NewTelegramNotifier(token string, verifiersChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{verifiersChatID: verifiersChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, verifiersChatID: verifiersChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRequestSubmitted(
	ctx context.Context,
	user *domain.User,
	event *domain.Event,
	req *domain.RegistrationRequest,
) {
	text := fmt.Sprintf(
		"*Заявка отправлена на проверку*\n\n"+"%s: %s\n"+"Сумма: %d INR\n"+"Мы сообщим, когда оплата будет проверена.",
		kindTitle(req.Kind), event.Title, req.DiscountedAmountInINR,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestVerified(
	ctx context.Context,
	user *domain.User,
	event *domain.Event,
	req *domain.RegistrationRequest,
) {
	text := fmt.Sprintf(
		"*Оплата подтверждена!*\n\n"+"%s: %s\n"+"Дата (время указано в UTC): %s",
		kindTitle(req.Kind), event.Title, event.EventDate.Format(dateLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestRejected(
	ctx context.Context,
	user *domain.User,
	event *domain.Event,
	req *domain.RegistrationRequest,
) {
	text := fmt.Sprintf(
		"*Оплата отклонена*\n\n"+"%s: %s\n"+"Причина: %s\n"+"Вы можете отправить заявку повторно.",
		kindTitle(req.Kind), event.Title, req.RejectionReason,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPendingBacklog(ctx context.Context, count int, olderThan time.Duration) {
	if n.verifiersChatID == 0 {
		n.logger.Debug("backlog digest skipped (no verifiers chat)", logger.Int("count", count))
		return
	}

	text := fmt.Sprintf(
		"*Ожидают проверки*\n\n"+"Заявок старше %s: %d",
		olderThan.String(), count,
	)
	chatID := n.verifiersChatID
	n.send(ctx, &chatID, text)
}

func kindTitle(kind domain.Kind) string {
	if kind == domain.KindEntryPass {
		return "Входной билет"
	}
	return "Регистрация команды"
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
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
