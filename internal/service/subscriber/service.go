// Package subscriber manages the newsletter subscriber registry.
package subscriber

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

type subscriberRepo interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Subscriber, error)
	GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*domain.Subscriber, error)
	List(ctx context.Context, orgID uuid.UUID, status *domain.SubscriberStatus, limit, offset int) ([]*domain.Subscriber, int, error)
	ListAll(ctx context.Context, orgID uuid.UUID) ([]*domain.Subscriber, error)
	ListByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) ([]*domain.Subscriber, error)
	CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) (int, error)
	Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error)
	Reactivate(ctx context.Context, orgID, id uuid.UUID, source string, at time.Time) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Subscriber, error)
	MarkBounced(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Subscriber, error)
	UpdateTags(ctx context.Context, orgID, id uuid.UUID, tags []string, at time.Time) (*domain.Subscriber, error)
}

const (
	DefaultSource     = "manual"
	DefaultListLimit  = 50
	MaxListLimit      = 200
	MaxImportRows     = 10000
	MaxTags           = 50
	MaxNameLength     = 200
	MaxSourceLength   = 100
	StatsNewWindow    = 30 * 24 * time.Hour
	maxImportErrors   = 100
	createAttemptsMax = 2
)

// Service provides subscriber operations for the organisation on the context.
type Service struct {
	subscribers subscriberRepo
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new subscriber service.
func NewService(log *slog.Logger, subscribers subscriberRepo) *Service {
	return &Service{
		subscribers: subscribers,
		log:         log.With("service", "subscriber"),
		now:         time.Now,
	}
}

func orgFromCtx(ctx context.Context) (uuid.UUID, error) {
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return orgID, nil
}

func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
