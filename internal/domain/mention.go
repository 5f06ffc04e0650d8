package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawMention is a single ingested item. Mentions are append-only.
type RawMention struct {
	ID         uuid.UUID `json:"id"`
	OrgID      uuid.UUID `json:"orgId"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Source     string    `json:"source"`
	ExternalID string    `json:"externalId"`
	FetchedAt  time.Time `json:"fetchedAt"`
}
