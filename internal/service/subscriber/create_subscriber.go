package subscriber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// Outcome tells what Create did with an email address.
type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeReactivated Outcome = "reactivated"
	OutcomeExisting    Outcome = "existing"
)

// CreateResult identifies the subscriber an email address resolved to.
type CreateResult struct {
	ID      uuid.UUID `json:"id"`
	Outcome Outcome   `json:"outcome"`
}

// Create subscribes an email address. Emails are unique per organisation:
// an unsubscribed address is reactivated under the new source, an active or
// bounced one is returned unchanged.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.create(ctx, orgID, input)
	if err != nil {
		return nil, err
	}

	if res.Outcome != OutcomeExisting {
		s.log.InfoContext(ctx, "subscriber "+string(res.Outcome),
			slog.String("org_id", orgID.String()),
			slog.String("subscriber_id", res.ID.String()),
		)
	}
	return res, nil
}

// create resolves a validated input. A concurrent insert of the same email
// surfaces as ErrAlreadyExists and is retried as a lookup.
func (s *Service) create(ctx context.Context, orgID uuid.UUID, input CreateInput) (*CreateResult, error) {
	email := domain.NormalizeEmail(input.Email)

	for attempt := 1; ; attempt++ {
		existing, err := s.subscribers.GetByEmail(ctx, orgID, email)
		switch {
		case err == nil:
			return s.resolveExisting(ctx, orgID, existing, input.source())
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get subscriber by email: %w", err)
		}

		now := s.clock()
		created, err := s.subscribers.Create(ctx, &domain.Subscriber{
			ID:        uuid.New(),
			OrgID:     orgID,
			Email:     email,
			Name:      input.name(),
			Status:    domain.SubscriberActive,
			Source:    input.source(),
			Tags:      domain.NormalizeTags(input.Tags),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err == nil {
			return &CreateResult{ID: created.ID, Outcome: OutcomeCreated}, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt >= createAttemptsMax {
			return nil, fmt.Errorf("create subscriber: %w", err)
		}
	}
}

func (s *Service) resolveExisting(ctx context.Context, orgID uuid.UUID, existing *domain.Subscriber, source string) (*CreateResult, error) {
	if existing.Status != domain.SubscriberUnsubscribed {
		return &CreateResult{ID: existing.ID, Outcome: OutcomeExisting}, nil
	}

	if _, err := s.subscribers.Reactivate(ctx, orgID, existing.ID, source, s.clock()); err != nil {
		return nil, fmt.Errorf("reactivate subscriber: %w", err)
	}
	return &CreateResult{ID: existing.ID, Outcome: OutcomeReactivated}, nil
}

// ImportError describes one failed row of a bulk import.
type ImportError struct {
	Row     int    `json:"row"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// BulkImportResult counts the outcome of a bulk import. Reactivated
// addresses count as imported.
type BulkImportResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
	Errors   []ImportError `json:"errors"`
}

// BulkImport applies Create to every row in order. Rows are independent: an
// invalid email or a store error fails that row only and the import
// continues.
func (s *Service) BulkImport(ctx context.Context, rows []ImportRow, source string) (*BulkImportResult, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) > MaxImportRows {
		return nil, domain.NewValidationError("rows", "max 10000 rows")
	}

	res := &BulkImportResult{Errors: []ImportError{}}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		input := CreateInput{Email: row.Email, Name: row.Name, Source: source, Tags: row.Tags}
		if err := input.Validate(); err != nil {
			res.fail(i, row.Email, err)
			continue
		}

		out, err := s.create(ctx, orgID, input)
		if err != nil {
			s.log.ErrorContext(ctx, "import row failed",
				slog.String("org_id", orgID.String()),
				slog.Int("row", i),
				slog.String("error", err.Error()),
			)
			res.fail(i, row.Email, err)
			continue
		}

		switch out.Outcome {
		case OutcomeExisting:
			res.Skipped++
		default:
			res.Imported++
		}
	}

	s.log.InfoContext(ctx, "subscribers imported",
		slog.String("org_id", orgID.String()),
		slog.Int("imported", res.Imported),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (r *BulkImportResult) fail(row int, email string, err error) {
	r.Failed++
	if len(r.Errors) < maxImportErrors {
		r.Errors = append(r.Errors, ImportError{Row: row, Email: email, Message: err.Error()})
	}
}
