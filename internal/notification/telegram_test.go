package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, b.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func chat(id int64) *int64 { return &id }

func TestTelegramNotifier_RequestMessages(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	user := &domain.User{ID: "u1", Name: "Asha", TelegramChatID: chat(42)}
	event := &domain.Event{
		ID:        "e1",
		Title:     "Hackathon",
		EventDate: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}
	req := &domain.RegistrationRequest{
		Kind:                  domain.KindParticipant,
		DiscountedAmountInINR: 400,
		RejectionReason:       "blurry screenshot",
	}

	ctx := context.Background()
	n.NotifyRequestSubmitted(ctx, user, event, req)
	n.NotifyRequestVerified(ctx, user, event, req)
	n.NotifyRequestRejected(ctx, user, event, req)

	require.Len(t, bot.sent, 3)
	for _, msg := range bot.sent {
		assert.Equal(t, int64(42), msg.ChatID)
		assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
		assert.Contains(t, msg.Text, "Hackathon")
	}
	assert.Contains(t, bot.sent[0].Text, "400 INR")
	assert.Contains(t, bot.sent[1].Text, "10.03.2026 09:30")
	assert.Contains(t, bot.sent[2].Text, "blurry screenshot")
}

func TestTelegramNotifier_SkipsWithoutChat(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyRequestVerified(context.Background(),
		&domain.User{ID: "u1"}, &domain.Event{Title: "Hackathon"},
		&domain.RegistrationRequest{Kind: domain.KindEntryPass},
	)

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.NotifyRequestSubmitted(ctx,
		&domain.User{TelegramChatID: chat(1)}, &domain.Event{},
		&domain.RegistrationRequest{Kind: domain.KindEntryPass},
	)

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_Backlog(t *testing.T) {
	bot := &fakeBot{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: bot, verifiersChatID: -100500, logger: newTestLogger(t)}

	n.NotifyPendingBacklog(context.Background(), 7, time.Hour)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(-100500), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "1h0m0s")
	assert.Contains(t, bot.sent[0].Text, "7")

	n.verifiersChatID = 0
	n.NotifyPendingBacklog(context.Background(), 3, time.Hour)
	assert.Len(t, bot.sent, 1)
}

func TestNewTelegramNotifier_EmptyToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, n.bot)

	// не должно паниковать без бота
	n.NotifyPendingBacklog(context.Background(), 1, time.Minute)
}
