package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter recipient. Email is unique per organisation and
// always stored normalized (see NormalizeEmail).
type Subscriber struct {
	ID             uuid.UUID        `json:"id"`
	OrgID          uuid.UUID        `json:"orgId"`
	Email          string           `json:"email"`
	Name           *string          `json:"name,omitempty"`
	Status         SubscriberStatus `json:"status"`
	Source         string           `json:"source"`
	Tags           []string         `json:"tags"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	UnsubscribedAt *time.Time       `json:"unsubscribedAt,omitempty"`
}

// SubscriberStats summarises the subscriber list of an organisation.
type SubscriberStats struct {
	Total         int            `json:"total"`
	Active        int            `json:"active"`
	Unsubscribed  int            `json:"unsubscribed"`
	Bounced       int            `json:"bounced"`
	BySource      map[string]int `json:"bySource"`
	NewLast30Days int            `json:"newLast30Days"`
}
