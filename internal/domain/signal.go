package domain

import (
	"time"

	"github.com/google/uuid"
)

// UntitledSignal is the display name used when neither an update nor the
// signal itself carries any text.
const UntitledSignal = "Untitled Signal"

// Signal is a classified, aggregated unit representing a detected trend.
// Metric fields are optional: records produced by the classifier may not
// carry them yet.
type Signal struct {
	ID                             uuid.UUID
	OrgID                          uuid.UUID
	Description                    string
	ClassificationReasoningConcise string
	BehaviorLayer                  BehaviorLayer
	ClassifiedBy                   string
	Steep                          *SteepCategory
	Confidence                     float64
	Keywords                       []string
	Tags                           []string
	MentionCount                   *int
	SourceCount                    *int
	Sentiment                      *float64
	Growth                         *float64
	Status                         SignalStatus
	ArchivedAt                     *time.Time
	ArchiveReason                  *string
	MergedInto                     *uuid.UUID
	IsSaved                        bool
	ViewCount                      int
	CreatedAt                      time.Time
	UpdatedAt                      *time.Time
}

// LastTouched returns UpdatedAt, falling back to CreatedAt.
func (s *Signal) LastTouched() time.Time {
	if s.UpdatedAt != nil {
		return *s.UpdatedAt
	}
	return s.CreatedAt
}

// SignalUpdate is a timestamped annotation attached to exactly one signal.
type SignalUpdate struct {
	ID        uuid.UUID `json:"id"`
	SignalID  uuid.UUID `json:"signalId"`
	Title     string    `json:"title"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignalMetrics holds the numeric activity metrics of a signal.
type SignalMetrics struct {
	MentionCount int
	SourceCount  int
	Sentiment    float64
	Growth       float64
}

// SignalView is the presentation model of a signal. Name and description are
// derived from the latest update and the stored fields.
type SignalView struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Lifecycle     Lifecycle      `json:"lifecycle"`
	BehaviorLayer BehaviorLayer  `json:"behaviorLayer"`
	Steep         *SteepCategory `json:"steep,omitempty"`
	ClassifiedBy  string         `json:"classifiedBy"`
	Confidence    float64        `json:"confidence"`
	Keywords      []string       `json:"keywords"`
	MentionCount  int            `json:"mentionCount"`
	SourceCount   int            `json:"sourceCount"`
	Sentiment     float64        `json:"sentiment"`
	Growth        float64        `json:"growth"`
	Status        SignalStatus   `json:"status"`
	ArchiveReason *string        `json:"archiveReason,omitempty"`
	MergedInto    *uuid.UUID     `json:"mergedInto,omitempty"`
	IsSaved       bool           `json:"isSaved"`
	ViewCount     int            `json:"viewCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// NewSignalView builds the view model of s. latest may be nil.
func NewSignalView(s *Signal, latest *SignalUpdate) SignalView {
	v := SignalView{
		ID:            s.ID,
		Name:          signalName(s, latest),
		Description:   signalDescription(s, latest),
		Lifecycle:     BehaviorToLifecycle(s.BehaviorLayer),
		BehaviorLayer: s.BehaviorLayer,
		Steep:         s.Steep,
		ClassifiedBy:  s.ClassifiedBy,
		Confidence:    s.Confidence,
		Keywords:      SignalKeywords(s),
		MentionCount:  derefInt(s.MentionCount),
		SourceCount:   derefInt(s.SourceCount),
		Sentiment:     derefFloat(s.Sentiment),
		Growth:        derefFloat(s.Growth),
		Status:        s.Status,
		ArchiveReason: s.ArchiveReason,
		MergedInto:    s.MergedInto,
		IsSaved:       s.IsSaved,
		ViewCount:     s.ViewCount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.LastTouched(),
	}
	return v
}

func signalName(s *Signal, latest *SignalUpdate) string {
	if latest != nil && latest.Title != "" {
		return latest.Title
	}
	if s.Description != "" {
		return s.Description
	}
	return UntitledSignal
}

func signalDescription(s *Signal, latest *SignalUpdate) string {
	if latest != nil && latest.Value != "" {
		return latest.Value
	}
	if s.Description != "" {
		return s.Description
	}
	return s.ClassificationReasoningConcise
}

// maxDerivedKeywords caps keywords extracted from free text.
const maxDerivedKeywords = 5

// SignalKeywords returns the keywords of s: the stored keyword list, then the
// tag list, then the first distinct tokens of its free-text fields.
func SignalKeywords(s *Signal) []string {
	if len(s.Keywords) > 0 {
		return s.Keywords
	}
	if len(s.Tags) > 0 {
		return s.Tags
	}

	tokens := Tokenize(s.Description + " " + s.ClassificationReasoningConcise)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, maxDerivedKeywords)
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == maxDerivedKeywords {
			break
		}
	}
	return out
}

// Metrics returns the stored metrics of s with absent values as zero.
func (s *Signal) Metrics() SignalMetrics {
	return SignalMetrics{
		MentionCount: derefInt(s.MentionCount),
		SourceCount:  derefInt(s.SourceCount),
		Sentiment:    derefFloat(s.Sentiment),
		Growth:       derefFloat(s.Growth),
	}
}

// SignalFilter holds the conjunctive filters accepted by signal listing.
// Nil fields are not applied.
type SignalFilter struct {
	Lifecycle *Lifecycle
	Steep     *SteepCategory
	Search    *string
	Status    *SignalStatus
}

// SignalStats summarises the signal collection of an organisation.
type SignalStats struct {
	Total             int               `json:"total"`
	Active            int               `json:"active"`
	Archived          int               `json:"archived"`
	Merged            int               `json:"merged"`
	ByLifecycle       map[Lifecycle]int `json:"byLifecycle"`
	BySteep           map[string]int    `json:"bySteep"`
	ByClassifier      map[string]int    `json:"byClassifier"`
	AverageConfidence float64           `json:"averageConfidence"`
	CreatedLast7Days  int               `json:"createdLast7Days"`
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// SignalPatch lists the editable fields of a signal. Nil fields are left
// unchanged.
type SignalPatch struct {
	Description                    *string
	ClassificationReasoningConcise *string
	BehaviorLayer                  *BehaviorLayer
	ClassifiedBy                   *string
	Steep                          *SteepCategory
	Confidence                     *float64
	Keywords                       []string
	Tags                           []string
}

// IsEmpty reports whether the patch changes nothing.
func (p SignalPatch) IsEmpty() bool {
	return p.Description == nil && p.ClassificationReasoningConcise == nil &&
		p.BehaviorLayer == nil && p.ClassifiedBy == nil && p.Steep == nil &&
		p.Confidence == nil && p.Keywords == nil && p.Tags == nil
}
