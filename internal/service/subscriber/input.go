package subscriber

import (
	"strings"
	"unicode/utf8"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// CreateInput holds the parameters for subscribing an email address.
type CreateInput struct {
	Email  string
	Name   *string
	Source string
	Tags   []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var v domain.ValidationError
	email := domain.NormalizeEmail(i.Email)
	if email == "" {
		v.Add("email", "required")
	} else if !domain.IsValidEmail(email) {
		v.Add("email", "invalid format")
	}
	if i.Name != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Name)) > MaxNameLength {
		v.Add("name", "max 200 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Source)) > MaxSourceLength {
		v.Add("source", "max 100 characters")
	}
	if len(i.Tags) > MaxTags {
		v.Add("tags", "max 50 entries")
	}
	return v.Err()
}

func (i CreateInput) source() string {
	if s := strings.TrimSpace(i.Source); s != "" {
		return s
	}
	return DefaultSource
}

func (i CreateInput) name() *string {
	if i.Name == nil {
		return nil
	}
	n := strings.TrimSpace(*i.Name)
	if n == "" {
		return nil
	}
	return &n
}

// ListInput holds the parameters for paging through subscribers.
type ListInput struct {
	Status *domain.SubscriberStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var v domain.ValidationError
	if i.Status != nil && !i.Status.IsValid() {
		v.Add("status", "invalid value")
	}
	if i.Limit < 0 {
		v.Add("limit", "must be non-negative")
	}
	if i.Limit > MaxListLimit {
		v.Add("limit", "max 200")
	}
	if i.Offset < 0 {
		v.Add("offset", "must be non-negative")
	}
	return v.Err()
}

// ImportRow is one already-parsed row of a bulk import.
type ImportRow struct {
	Email string
	Name  *string
	Tags  []string
}
