// Package analytics derives activity summaries from signals, raw mentions and
// sources. Every call recomputes from a bounded scan; nothing is stored.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/config"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

type signalRepo interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Signal, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*domain.Signal, error)
	ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*domain.Signal, error)
	ListCreatedSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.Signal, error)
	ListTouchedSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.Signal, error)
}

type mentionRepo interface {
	ListSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.RawMention, error)
	CountSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int, error)
}

type sourceRepo interface {
	List(ctx context.Context, orgID uuid.UUID, filter domain.SourceFilter) ([]*domain.Source, error)
}

type subscriberCounter interface {
	CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) (int, error)
}

const (
	DefaultVelocityDays       = 30
	MaxVelocityDays           = 365
	DefaultSentimentDays      = 7
	MaxSentimentDays          = 365
	MaxSentimentLimit         = 5000
	DefaultTagLimit           = 50
	DefaultTagMinCount        = 2
	MaxTagLimit               = 200
	DefaultTrendingLimit      = 10
	TrendingWindow            = 7 * 24 * time.Hour
	DefaultRecentHours        = 24
	MaxRecentHours            = 30 * 24
	DefaultRecentLimit        = 20
	DefaultSignalMetricsLimit = 10
	MaxResultLimit            = 100
)

// Service computes analytics for the organisation on the context.
type Service struct {
	signals     signalRepo
	mentions    mentionRepo
	sources     sourceRepo
	subscribers subscriberCounter
	cfg         config.AnalyticsConfig
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new analytics service. Zero scan limits in cfg fall
// back to the documented defaults.
func NewService(
	log *slog.Logger,
	cfg config.AnalyticsConfig,
	signals signalRepo,
	mentions mentionRepo,
	sources sourceRepo,
	subscribers subscriberCounter,
) *Service {
	return &Service{
		signals:     signals,
		mentions:    mentions,
		sources:     sources,
		subscribers: subscribers,
		cfg:         withDefaults(cfg),
		log:         log.With("service", "analytics"),
		now:         time.Now,
	}
}

func withDefaults(cfg config.AnalyticsConfig) config.AnalyticsConfig {
	if cfg.SignalScanLimit <= 0 {
		cfg.SignalScanLimit = 1000
	}
	if cfg.MentionScanLimit <= 0 {
		cfg.MentionScanLimit = 2000
	}
	if cfg.SentimentScanLimit <= 0 {
		cfg.SentimentScanLimit = 500
	}
	if cfg.TagScanLimit <= 0 {
		cfg.TagScanLimit = 1000
	}
	return cfg
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

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func views(signals []*domain.Signal) []domain.SignalView {
	out := make([]domain.SignalView, len(signals))
	for i, sig := range signals {
		out[i] = domain.NewSignalView(sig, nil)
	}
	return out
}
