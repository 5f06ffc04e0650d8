package signal

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// ListSignalsInput holds the conjunctive filters of a signal listing.
type ListSignalsInput struct {
	Lifecycle *domain.Lifecycle
	Steep     *domain.SteepCategory
	Search    *string
	Status    *domain.SignalStatus
}

// Validate checks all fields and collects all errors.
func (i ListSignalsInput) Validate() error {
	var v domain.ValidationError
	if i.Lifecycle != nil && !i.Lifecycle.IsValid() {
		v.Add("lifecycle", "invalid value")
	}
	if i.Steep != nil && !i.Steep.IsValid() {
		v.Add("steep", "invalid value")
	}
	if i.Status != nil && !i.Status.IsValid() {
		v.Add("status", "invalid value")
	}
	return v.Err()
}

// CreateSignalInput holds the parameters for creating a signal. Lifecycle is
// translated to a behavior layer when BehaviorLayer is empty.
type CreateSignalInput struct {
	Description   string
	Reasoning     string
	BehaviorLayer domain.BehaviorLayer
	Lifecycle     *domain.Lifecycle
	ClassifiedBy  string
	Steep         *domain.SteepCategory
	Confidence    float64
	Keywords      []string
	Tags          []string
}

// Validate checks all fields and collects all errors.
func (i CreateSignalInput) Validate() error {
	var v domain.ValidationError
	validateDescription(&v, i.Description)
	if utf8.RuneCountInString(i.Reasoning) > MaxReasoningLength {
		v.Add("reasoning", "max 5000 characters")
	}
	switch {
	case i.BehaviorLayer != "":
		if !i.BehaviorLayer.IsValid() {
			v.Add("behaviorLayer", "invalid value")
		}
	case i.Lifecycle != nil:
		if !i.Lifecycle.IsValid() {
			v.Add("lifecycle", "invalid value")
		}
	default:
		v.Add("behaviorLayer", "required")
	}
	if i.Steep != nil && !i.Steep.IsValid() {
		v.Add("steep", "invalid value")
	}
	validateConfidence(&v, i.Confidence)
	validateKeywords(&v, "keywords", i.Keywords)
	validateKeywords(&v, "tags", i.Tags)
	return v.Err()
}

func (i CreateSignalInput) behavior() domain.BehaviorLayer {
	if i.BehaviorLayer != "" {
		return i.BehaviorLayer
	}
	return domain.LifecycleToBehavior(*i.Lifecycle)
}

// UpdateSignalInput holds the editable fields of a signal. Nil fields are
// left unchanged.
type UpdateSignalInput struct {
	Description  *string
	Reasoning    *string
	Lifecycle    *domain.Lifecycle
	ClassifiedBy *string
	Steep        *domain.SteepCategory
	Confidence   *float64
	Keywords     []string
	Tags         []string
}

// Validate checks all fields and collects all errors.
func (i UpdateSignalInput) Validate() error {
	var v domain.ValidationError
	if i.Description != nil {
		validateDescription(&v, *i.Description)
	}
	if i.Reasoning != nil && utf8.RuneCountInString(*i.Reasoning) > MaxReasoningLength {
		v.Add("reasoning", "max 5000 characters")
	}
	if i.Lifecycle != nil && !i.Lifecycle.IsValid() {
		v.Add("lifecycle", "invalid value")
	}
	if i.Steep != nil && !i.Steep.IsValid() {
		v.Add("steep", "invalid value")
	}
	if i.Confidence != nil {
		validateConfidence(&v, *i.Confidence)
	}
	validateKeywords(&v, "keywords", i.Keywords)
	validateKeywords(&v, "tags", i.Tags)
	if len(v.Errors) == 0 && i.patch().IsEmpty() {
		v.Add("input", "no fields to update")
	}
	return v.Err()
}

func (i UpdateSignalInput) patch() domain.SignalPatch {
	p := domain.SignalPatch{
		Description:                    trimPtr(i.Description),
		ClassificationReasoningConcise: trimPtr(i.Reasoning),
		ClassifiedBy:                   trimPtr(i.ClassifiedBy),
		Steep:                          i.Steep,
		Confidence:                     i.Confidence,
	}
	if i.Lifecycle != nil {
		b := domain.LifecycleToBehavior(*i.Lifecycle)
		p.BehaviorLayer = &b
	}
	if i.Keywords != nil {
		p.Keywords = domain.NormalizeTags(i.Keywords)
	}
	if i.Tags != nil {
		p.Tags = domain.NormalizeTags(i.Tags)
	}
	return p
}

// MergeSignalsInput holds the parameters for merging secondaries into a
// primary signal.
type MergeSignalsInput struct {
	PrimaryID    uuid.UUID
	SecondaryIDs []uuid.UUID
	Description  *string
}

// Validate checks all fields and collects all errors.
func (i MergeSignalsInput) Validate() error {
	var v domain.ValidationError
	if i.PrimaryID == uuid.Nil {
		v.Add("primaryId", "required")
	}
	if len(i.SecondaryIDs) == 0 {
		v.Add("secondaryIds", "at least one required")
	}
	for _, id := range i.SecondaryIDs {
		if id == uuid.Nil {
			v.Add("secondaryIds", "must not contain empty ids")
			break
		}
		if id == i.PrimaryID {
			v.Add("secondaryIds", "must not contain the primary signal")
			break
		}
	}
	if i.Description != nil {
		validateDescription(&v, *i.Description)
	}
	return v.Err()
}

// UpdateMetricsInput holds a partial metrics update. Nil fields keep their
// stored value.
type UpdateMetricsInput struct {
	MentionCount *int
	SourceCount  *int
	Sentiment    *float64
	Growth       *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateMetricsInput) Validate() error {
	var v domain.ValidationError
	if i.MentionCount != nil && *i.MentionCount < 0 {
		v.Add("mentionCount", "must be non-negative")
	}
	if i.SourceCount != nil && *i.SourceCount < 0 {
		v.Add("sourceCount", "must be non-negative")
	}
	if i.Sentiment != nil && (*i.Sentiment < -1 || *i.Sentiment > 1) {
		v.Add("sentiment", "must be between -1 and 1")
	}
	if i.MentionCount == nil && i.SourceCount == nil && i.Sentiment == nil && i.Growth == nil {
		v.Add("input", "no fields to update")
	}
	return v.Err()
}

func (i UpdateMetricsInput) apply(m domain.SignalMetrics) domain.SignalMetrics {
	if i.MentionCount != nil {
		m.MentionCount = *i.MentionCount
	}
	if i.SourceCount != nil {
		m.SourceCount = *i.SourceCount
	}
	if i.Sentiment != nil {
		m.Sentiment = *i.Sentiment
	}
	if i.Growth != nil {
		m.Growth = *i.Growth
	}
	return m
}

// AddUpdateInput holds a timestamped annotation for a signal.
type AddUpdateInput struct {
	Title string
	Value string
}

// Validate checks all fields and collects all errors.
func (i AddUpdateInput) Validate() error {
	var v domain.ValidationError
	title := strings.TrimSpace(i.Title)
	value := strings.TrimSpace(i.Value)
	if title == "" && value == "" {
		v.Add("title", "title or value required")
	}
	if utf8.RuneCountInString(title) > MaxUpdateTitleLength {
		v.Add("title", "max 200 characters")
	}
	if utf8.RuneCountInString(value) > MaxDescriptionLength {
		v.Add("value", "max 5000 characters")
	}
	return v.Err()
}

func validateDescription(v *domain.ValidationError, description string) {
	d := strings.TrimSpace(description)
	if d == "" {
		v.Add("description", "required")
	}
	if utf8.RuneCountInString(d) > MaxDescriptionLength {
		v.Add("description", "max 5000 characters")
	}
}

func validateConfidence(v *domain.ValidationError, c float64) {
	if c < 0 || c > 1 {
		v.Add("confidence", "must be between 0 and 1")
	}
}

func validateKeywords(v *domain.ValidationError, field string, kws []string) {
	if len(kws) > MaxKeywords {
		v.Add(field, "max 50 entries")
	}
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	return &t
}
