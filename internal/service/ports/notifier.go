package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
)

type RegistrationNotifier interface {
	NotifyRequestSubmitted(ctx context.Context, user *domain.User, event *domain.Event, req *domain.RegistrationRequest)
	NotifyRequestVerified(ctx context.Context, user *domain.User, event *domain.Event, req *domain.RegistrationRequest)
	NotifyRequestRejected(ctx context.Context, user *domain.User, event *domain.Event, req *domain.RegistrationRequest)
	NotifyPendingBacklog(ctx context.Context, count int, olderThan time.Duration)
}
