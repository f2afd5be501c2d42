package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Customer is a client of the firm together with their selected service bundle,
// intake answers and proposal state. Fields and the snapshot live in jsonb
// columns; the service bundle is a text array.
type Customer struct {
	gorm.Model
	Name     string         `gorm:"not null" json:"name"`
	Email    string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string         `json:"phone"`
	Services pq.StringArray `gorm:"type:text[]" json:"services"`
	Fields   FieldRecord    `gorm:"type:jsonb" json:"fields"`

	ProposalSentAt    *time.Time        `json:"proposal_sent_at"`
	ProposalExpiresAt *time.Time        `json:"proposal_expires_at"`
	ProposalSnapshot  *ProposalSnapshot `gorm:"type:jsonb" json:"proposal_snapshot,omitempty"`
}

// SelectedServices converts the stored bundle into typed categories.
func (c *Customer) SelectedServices() []ServiceCategory {
	out := make([]ServiceCategory, 0, len(c.Services))
	for _, s := range c.Services {
		out = append(out, ServiceCategory(s))
	}
	return out
}

// ProposalSent reports whether a proposal has already been sent and frozen.
func (c *Customer) ProposalSent() bool {
	return c.ProposalSentAt != nil && c.ProposalSnapshot != nil
}
