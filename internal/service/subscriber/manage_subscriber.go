package subscriber

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// ListResult is one page of subscribers and the total matching count.
type ListResult struct {
	Items []*domain.Subscriber `json:"items"`
	Total int                  `json:"total"`
}

// List pages through subscribers, newest first, optionally by status.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	items, total, err := s.subscribers.List(ctx, orgID, input.Status, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return &ListResult{Items: items, Total: total}, nil
}

// ListActive returns every active subscriber, oldest first.
func (s *Service) ListActive(ctx context.Context) ([]*domain.Subscriber, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := s.subscribers.ListByStatus(ctx, orgID, domain.SubscriberActive)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	return subs, nil
}

// Get returns one subscriber by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := s.subscribers.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return sub, nil
}

// GetByEmail looks a subscriber up by email, compared in normalized form.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	sub, err := s.subscribers.GetByEmail(ctx, orgID, email)
	if err != nil {
		return nil, fmt.Errorf("get subscriber by email: %w", err)
	}
	return sub, nil
}

// GetActiveCount returns the number of active subscribers.
func (s *Service) GetActiveCount(ctx context.Context) (int, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.subscribers.CountByStatus(ctx, orgID, domain.SubscriberActive)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}

// GetStats summarises the subscriber list.
func (s *Service) GetStats(ctx context.Context) (*domain.SubscriberStats, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := s.subscribers.ListAll(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	cutoff := s.clock().Add(-StatsNewWindow)
	stats := &domain.SubscriberStats{
		Total:    len(subs),
		BySource: make(map[string]int),
	}
	for _, sub := range subs {
		switch sub.Status {
		case domain.SubscriberActive:
			stats.Active++
		case domain.SubscriberUnsubscribed:
			stats.Unsubscribed++
		case domain.SubscriberBounced:
			stats.Bounced++
		}
		stats.BySource[sub.Source]++
		if !sub.CreatedAt.Before(cutoff) {
			stats.NewLast30Days++
		}
	}
	return stats, nil
}

// Unsubscribe stops delivery to a subscriber and stamps unsubscribedAt.
func (s *Service) Unsubscribe(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := s.subscribers.Unsubscribe(ctx, orgID, id, s.clock())
	if err != nil {
		return nil, fmt.Errorf("unsubscribe: %w", err)
	}

	s.log.InfoContext(ctx, "subscriber unsubscribed",
		slog.String("org_id", orgID.String()),
		slog.String("subscriber_id", id.String()),
	)
	return sub, nil
}

// MarkBounced flags a subscriber whose address bounced.
func (s *Service) MarkBounced(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := s.subscribers.MarkBounced(ctx, orgID, id, s.clock())
	if err != nil {
		return nil, fmt.Errorf("mark bounced: %w", err)
	}
	return sub, nil
}

// UpdateTags replaces the tag list of a subscriber.
func (s *Service) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.Subscriber, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if len(tags) > MaxTags {
		return nil, domain.NewValidationError("tags", "max 50 entries")
	}

	sub, err := s.subscribers.UpdateTags(ctx, orgID, id, domain.NormalizeTags(tags), s.clock())
	if err != nil {
		return nil, fmt.Errorf("update tags: %w", err)
	}
	return sub, nil
}
