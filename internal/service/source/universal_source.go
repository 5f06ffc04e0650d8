package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

var socialHosts = []string{"twitter.com", "x.com", "linkedin.com", "reddit.com"}

// InferSourceType guesses the kind of source behind u from its host and
// path. Checks run in order: feeds, social networks, APIs, newsletters,
// falling back to web.
func InferSourceType(u *url.URL) domain.SourceType {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.ToLower(u.Path)
	full := host + path

	switch {
	case strings.Contains(full, "feed") || strings.Contains(full, "rss") || strings.HasSuffix(path, ".xml"):
		return domain.SourceTypeRSS
	case isSocialHost(host):
		return domain.SourceTypeSocial
	case strings.HasPrefix(host, "api.") || strings.Contains(path, "/api"):
		return domain.SourceTypeAPI
	case strings.Contains(full, "substack") || strings.Contains(full, "newsletter"):
		return domain.SourceTypeNewsletter
	default:
		return domain.SourceTypeWeb
	}
}

func isSocialHost(host string) bool {
	if strings.Contains(host, "mastodon") {
		return true
	}
	for _, h := range socialHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// CreateUniversalSource registers a source from a URL alone. The type is
// inferred from the URL and the name defaults to its host.
func (s *Service) CreateUniversalSource(ctx context.Context, input UniversalSourceInput) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(input.URL)
	u, err := parseHTTPURL(raw)
	if err != nil {
		return nil, domain.NewValidationError("url", "must be an absolute http(s) URL")
	}

	name := u.Hostname()
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		name = strings.TrimSpace(*input.Name)
	}

	return s.create(ctx, orgID, &domain.Source{
		Name: name,
		URL:  raw,
		Type: InferSourceType(u),
	})
}

// UpdateUniversalSourceAnalysis stores the analysis of a universal source and
// promotes it from pending to active.
func (s *Service) UpdateUniversalSourceAnalysis(ctx context.Context, id uuid.UUID, input AnalysisInput) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock()
	src, err := s.sources.UpdateAnalysis(ctx, orgID, id, &domain.SourceAnalysis{
		DetectedType: input.DetectedType,
		Topics:       domain.NormalizeTags(input.Topics),
		QualityScore: input.QualityScore,
		Language:     strings.TrimSpace(input.Language),
		Notes:        strings.TrimSpace(input.Notes),
		AnalyzedAt:   now,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("update source analysis: %w", err)
	}
	return src, nil
}
