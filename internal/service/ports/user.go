package ports

import (
	"context"

	"github.com/stpnv0/EventPass/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByIDs returns the found users keyed by id; missing ids are simply absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
