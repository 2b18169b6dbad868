package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
)

// quote prices one order of kind for event, applying code when it is set.
func quote(
	ctx context.Context,
	promos ports.PromotionRepo,
	event *domain.Event,
	kind domain.Kind,
	code string,
	now time.Time,
) (*domain.Quote, error) {
	q := &domain.Quote{BaseAmountInINR: event.PriceFor(kind)}
	q.DiscountedAmountInINR = q.BaseAmountInINR

	code = domain.NormalizePromoCode(code)
	if code == "" {
		return q, nil
	}

	promo, err := promos.GetByCode(ctx, code, kind)
	if err != nil {
		if errors.Is(err, domain.ErrPromotionNotFound) {
			return nil, fmt.Errorf("%w: unknown promo code %q", domain.ErrValidation, code)
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	if err = promo.Usable(kind, now); err != nil {
		return nil, err
	}

	q.PromoCode = promo.Code
	q.DiscountedAmountInINR = domain.Apply(promo, q.BaseAmountInINR)

	return q, nil
}

// buildTeam returns member ids and names with the leader first.
// Duplicates are dropped and every member must exist in the directory.
func buildTeam(
	ctx context.Context,
	users ports.UserRepo,
	leader *domain.User,
	memberIDs []string,
) ([]string, []string, error) {
	ids := []string{leader.ID}
	names := []string{leader.Name}

	seen := map[string]struct{}{leader.ID: {}}
	others := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		others = append(others, id)
	}

	if len(others) == 0 {
		return ids, names, nil
	}

	found, err := users.GetByIDs(ctx, others)
	if err != nil {
		return nil, nil, fmt.Errorf("get members: %w", err)
	}

	for _, id := range others {
		u, ok := found[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown team member %s", domain.ErrValidation, id)
		}
		ids = append(ids, u.ID)
		names = append(names, u.Name)
	}

	return ids, names, nil
}

func teamName(event *domain.Event, leader *domain.User, name string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}
	if event.MaxTeamSize <= 1 {
		return leader.Name, nil
	}
	return "", fmt.Errorf("%w: team name is required", domain.ErrValidation)
}
