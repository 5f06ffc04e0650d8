package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnhealthyErrorCount is the error count at which a source stops counting
// as healthy.
const UnhealthyErrorCount = 5

// Source is a configured ingestion origin.
type Source struct {
	ID                   uuid.UUID       `json:"id"`
	OrgID                uuid.UUID       `json:"orgId"`
	UserID               *uuid.UUID      `json:"userId,omitempty"`
	Name                 string          `json:"name"`
	Type                 SourceType      `json:"type"`
	URL                  string          `json:"url"`
	Status               SourceStatus    `json:"status"`
	IsActive             bool            `json:"isActive"`
	HealthScore          float64         `json:"healthScore"`
	CoverageScore        float64         `json:"coverageScore"`
	ErrorCount           int             `json:"errorCount"`
	LastError            *string         `json:"lastError,omitempty"`
	LastUpdated          *time.Time      `json:"lastUpdated,omitempty"`
	LastCollectedAt      *time.Time      `json:"lastCollectedAt,omitempty"`
	FetchIntervalMinutes int             `json:"fetchIntervalMinutes"`
	RateLimitRequests    int             `json:"rateLimitRequests"`
	RateLimitWindowStart *time.Time      `json:"rateLimitWindowStart,omitempty"`
	Keywords             []string        `json:"keywords"`
	Analysis             *SourceAnalysis `json:"analysis,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// IsHealthy reports whether the source is enabled and below the error threshold.
func (s *Source) IsHealthy() bool {
	return s.IsActive && s.ErrorCount < UnhealthyErrorCount
}

// Health returns "healthy" or "unhealthy".
func (s *Source) Health() string {
	if s.IsHealthy() {
		return "healthy"
	}
	return "unhealthy"
}

// SourceAnalysis is the result of analysing a universal source: what kind of
// origin it is and what it covers.
type SourceAnalysis struct {
	DetectedType SourceType `json:"detectedType"`
	Topics       []string   `json:"topics"`
	QualityScore float64    `json:"qualityScore"`
	Language     string     `json:"language,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	AnalyzedAt   time.Time  `json:"analyzedAt"`
}

// SourceFilter narrows source listings. Nil fields are not applied.
type SourceFilter struct {
	Status   *SourceStatus
	Type     *SourceType
	IsActive *bool
}

// SourcePatch lists the editable fields of a source. Nil fields are left
// unchanged.
type SourcePatch struct {
	Name                 *string
	URL                  *string
	Type                 *SourceType
	Status               *SourceStatus
	FetchIntervalMinutes *int
	Keywords             []string
}

// IsEmpty reports whether the patch changes nothing.
func (p SourcePatch) IsEmpty() bool {
	return p.Name == nil && p.URL == nil && p.Type == nil && p.Status == nil &&
		p.FetchIntervalMinutes == nil && p.Keywords == nil
}

// SourceHealthUpdate carries the fields written by a health report.
type SourceHealthUpdate struct {
	Status      SourceStatus
	ErrorCount  int
	LastError   *string
	HealthScore *float64
}

// SourceStats summarises the sources of an organisation.
type SourceStats struct {
	Total         int                  `json:"total"`
	Active        int                  `json:"active"`
	ByStatus      map[SourceStatus]int `json:"byStatus"`
	ByType        map[SourceType]int   `json:"byType"`
	AverageHealth float64              `json:"averageHealth"`
}

// SourceHealthStats is the health report of a timeframe.
type SourceHealthStats struct {
	Timeframe        Timeframe                 `json:"timeframe"`
	Total            int                       `json:"total"`
	Healthy          int                       `json:"healthy"`
	Unhealthy        int                       `json:"unhealthy"`
	Error            int                       `json:"error"`
	Stalled          int                       `json:"stalled"`
	HealthPercentage float64                   `json:"healthPercentage"`
	ByType           map[SourceType]TypeHealth `json:"byType"`
}

// TypeHealth is the healthy/total split for one source type.
type TypeHealth struct {
	Total   int `json:"total"`
	Healthy int `json:"healthy"`
}

// Duration returns the length of the timeframe. Unknown values default to 24h.
func (t Timeframe) Duration() time.Duration {
	switch t {
	case Timeframe7d:
		return 7 * 24 * time.Hour
	case Timeframe30d:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}
