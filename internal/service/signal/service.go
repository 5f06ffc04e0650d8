// Package signal implements signal queries and mutations: filtering and
// presentation, archive/restore, merging and metric recalculation.
package signal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

type signalRepo interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Signal, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*domain.Signal, error)
	ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.Signal, error)
	ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*domain.Signal, error)
	ListForNewsletter(ctx context.Context, orgID uuid.UUID, since time.Time, minConfidence float64, limit int) ([]*domain.Signal, error)
	Create(ctx context.Context, s *domain.Signal) (*domain.Signal, error)
	Update(ctx context.Context, orgID, id uuid.UUID, patch domain.SignalPatch, at time.Time) (*domain.Signal, error)
	Archive(ctx context.Context, orgID, id uuid.UUID, reason *string, at time.Time) (*domain.Signal, error)
	Restore(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Signal, error)
	MarkMerged(ctx context.Context, orgID, id, primaryID uuid.UUID, at time.Time) error
	UpdateMetrics(ctx context.Context, orgID, id uuid.UUID, m domain.SignalMetrics, at time.Time) (*domain.Signal, error)
	UpdateMetricsBatch(ctx context.Context, orgID uuid.UUID, metrics map[uuid.UUID]domain.SignalMetrics, at time.Time) (int, error)
	ToggleSave(ctx context.Context, orgID, id uuid.UUID) (bool, error)
	IncrementViewCount(ctx context.Context, orgID, id uuid.UUID) (int, error)
	ListMergedPrimaries(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	DeleteMany(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type updateRepo interface {
	LatestUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.SignalUpdate, error)
	ListUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.SignalUpdate, error)
	AddUpdate(ctx context.Context, orgID uuid.UUID, u *domain.SignalUpdate) (*domain.SignalUpdate, error)
}

type mentionRepo interface {
	ListSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.RawMention, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultSearchLimit      = 20
	DefaultTrendingLimit    = 10
	DefaultRelatedLimit     = 5
	DefaultWithUpdatesLimit = 20
	MaxListLimit            = 100
	MaxDeleteBatch          = 100
	MaxDescriptionLength    = 5000
	MaxReasoningLength      = 5000
	MaxArchiveReasonLength  = 500
	MaxUpdateTitleLength    = 200
	MaxKeywords             = 50

	// Newsletter defaults.
	DefaultNewsletterDays          = 7
	DefaultNewsletterMinConfidence = 0.5
	DefaultNewsletterLimit         = 10

	// Metric recalculation looks back two weeks and compares the halves.
	RecalcWindow       = 14 * 24 * time.Hour
	RecalcHalfWindow   = 7 * 24 * time.Hour
	RecalcMentionLimit = 10000
)

// Service provides signal operations for the organisation on the context.
type Service struct {
	signals  signalRepo
	updates  updateRepo
	mentions mentionRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new signal service.
func NewService(
	log *slog.Logger,
	signals signalRepo,
	updates updateRepo,
	mentions mentionRepo,
	tx txManager,
) *Service {
	return &Service{
		signals:  signals,
		updates:  updates,
		mentions: mentions,
		tx:       tx,
		log:      log.With("service", "signal"),
		now:      time.Now,
	}
}

func orgFromCtx(ctx context.Context) (uuid.UUID, error) {
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return orgID, nil
}

// clock returns the current time at storage precision.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// touchTime returns the updatedAt to stamp on a signal last touched at prev.
// It is strictly after prev even when the clock has not advanced.
func (s *Service) touchTime(prev time.Time) time.Time {
	now := s.clock()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

// views builds the view models of signals with their latest updates.
func (s *Service) views(ctx context.Context, orgID uuid.UUID, signals []*domain.Signal) ([]domain.SignalView, error) {
	latest, err := s.latestUpdates(ctx, orgID, signals)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SignalView, 0, len(signals))
	for _, sig := range signals {
		out = append(out, domain.NewSignalView(sig, latest[sig.ID]))
	}
	return out, nil
}

func (s *Service) view(ctx context.Context, orgID uuid.UUID, sig *domain.Signal) (*domain.SignalView, error) {
	views, err := s.views(ctx, orgID, []*domain.Signal{sig})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) latestUpdates(ctx context.Context, orgID uuid.UUID, signals []*domain.Signal) (map[uuid.UUID]*domain.SignalUpdate, error) {
	if len(signals) == 0 {
		return map[uuid.UUID]*domain.SignalUpdate{}, nil
	}
	latest, err := s.updates.LatestUpdates(ctx, orgID, signalIDs(signals))
	if err != nil {
		return nil, fmt.Errorf("latest updates: %w", err)
	}
	return latest, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxListLimit)
}
