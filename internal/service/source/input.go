package source

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// CreateSourceInput holds the parameters for registering a source.
type CreateSourceInput struct {
	Name                 string
	URL                  string
	Type                 domain.SourceType
	FetchIntervalMinutes int
	Keywords             []string
}

// Validate checks all fields and collects all errors.
func (i CreateSourceInput) Validate() error {
	var v domain.ValidationError
	validateName(&v, i.Name)
	validateURL(&v, i.URL)
	if !i.Type.IsValid() {
		v.Add("type", "invalid value")
	}
	if i.FetchIntervalMinutes != 0 {
		validateInterval(&v, i.FetchIntervalMinutes)
	}
	if len(i.Keywords) > MaxKeywords {
		v.Add("keywords", "max 50 entries")
	}
	return v.Err()
}

// UpdateSourceInput holds the editable fields of a source. Nil fields are
// left unchanged.
type UpdateSourceInput struct {
	Name                 *string
	URL                  *string
	Type                 *domain.SourceType
	Status               *domain.SourceStatus
	FetchIntervalMinutes *int
	Keywords             []string
}

// Validate checks all fields and collects all errors.
func (i UpdateSourceInput) Validate() error {
	var v domain.ValidationError
	if i.Name != nil {
		validateName(&v, *i.Name)
	}
	if i.URL != nil {
		validateURL(&v, *i.URL)
	}
	if i.Type != nil && !i.Type.IsValid() {
		v.Add("type", "invalid value")
	}
	if i.Status != nil && !i.Status.IsValid() {
		v.Add("status", "invalid value")
	}
	if i.FetchIntervalMinutes != nil {
		validateInterval(&v, *i.FetchIntervalMinutes)
	}
	if len(i.Keywords) > MaxKeywords {
		v.Add("keywords", "max 50 entries")
	}
	if len(v.Errors) == 0 && i.patch().IsEmpty() {
		v.Add("input", "no fields to update")
	}
	return v.Err()
}

func (i UpdateSourceInput) patch() domain.SourcePatch {
	p := domain.SourcePatch{
		Type:                 i.Type,
		Status:               i.Status,
		FetchIntervalMinutes: i.FetchIntervalMinutes,
	}
	if i.Name != nil {
		n := strings.TrimSpace(*i.Name)
		p.Name = &n
	}
	if i.URL != nil {
		u := strings.TrimSpace(*i.URL)
		p.URL = &u
	}
	if i.Keywords != nil {
		p.Keywords = domain.NormalizeTags(i.Keywords)
	}
	return p
}

// HealthInput is a health report for one source.
type HealthInput struct {
	Status      domain.SourceStatus
	ErrorCount  int
	LastError   *string
	HealthScore *float64
}

// Validate checks all fields and collects all errors.
func (i HealthInput) Validate() error {
	var v domain.ValidationError
	if !i.Status.IsValid() {
		v.Add("status", "invalid value")
	}
	if i.ErrorCount < 0 {
		v.Add("errorCount", "must be non-negative")
	}
	if i.HealthScore != nil {
		validateScore(&v, "healthScore", *i.HealthScore)
	}
	return v.Err()
}

// UniversalSourceInput registers a source from a bare URL.
type UniversalSourceInput struct {
	URL  string
	Name *string
}

// Validate checks all fields and collects all errors.
func (i UniversalSourceInput) Validate() error {
	var v domain.ValidationError
	validateURL(&v, i.URL)
	if i.Name != nil && strings.TrimSpace(*i.Name) != "" {
		validateName(&v, *i.Name)
	}
	return v.Err()
}

// AnalysisInput is the analysis result of a universal source.
type AnalysisInput struct {
	DetectedType domain.SourceType
	Topics       []string
	QualityScore float64
	Language     string
	Notes        string
}

// Validate checks all fields and collects all errors.
func (i AnalysisInput) Validate() error {
	var v domain.ValidationError
	if !i.DetectedType.IsValid() {
		v.Add("detectedType", "invalid value")
	}
	validateScore(&v, "qualityScore", i.QualityScore)
	if len(i.Topics) > MaxKeywords {
		v.Add("topics", "max 50 entries")
	}
	if utf8.RuneCountInString(i.Notes) > 5000 {
		v.Add("notes", "max 5000 characters")
	}
	return v.Err()
}

func validateName(v *domain.ValidationError, name string) {
	n := strings.TrimSpace(name)
	if n == "" {
		v.Add("name", "required")
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		v.Add("name", "max 200 characters")
	}
}

func validateURL(v *domain.ValidationError, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		v.Add("url", "required")
		return
	}
	if len(raw) > MaxURLLength {
		v.Add("url", "max 2048 characters")
		return
	}
	if _, err := parseHTTPURL(raw); err != nil {
		v.Add("url", "must be an absolute http(s) URL")
	}
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.ErrValidation
	}
	return u, nil
}

func validateInterval(v *domain.ValidationError, minutes int) {
	if minutes < 1 || minutes > MaxFetchIntervalMinutes {
		v.Add("fetchIntervalMinutes", "must be between 1 and 10080")
	}
}

func validateScore(v *domain.ValidationError, field string, score float64) {
	if score < 0 || score > 100 {
		v.Add(field, "must be between 0 and 100")
	}
}
