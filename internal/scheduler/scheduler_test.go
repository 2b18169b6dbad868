package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventPass/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ReportsBacklog(t *testing.T) {
	reporter := mocks.NewMockBacklogReporter(t)

	s := New(reporter, 50*time.Millisecond, 24*time.Hour, newTestLogger(t))

	reporter.EXPECT().ReportBacklog(mock.Anything, 24*time.Hour).Return(3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reporter.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reporter := mocks.NewMockBacklogReporter(t)

	s := New(reporter, 50*time.Millisecond, time.Hour, newTestLogger(t))

	reporter.EXPECT().ReportBacklog(mock.Anything, time.Hour).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reporter.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reporter := mocks.NewMockBacklogReporter(t)

	s := New(reporter, time.Second, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	reporter := mocks.NewMockBacklogReporter(t)

	s := New(reporter, 30*time.Millisecond, time.Hour, newTestLogger(t))

	reporter.EXPECT().ReportBacklog(mock.Anything, time.Hour).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reporter.Calls), 3)
}
