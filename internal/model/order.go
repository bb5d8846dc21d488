package model

import (
	"strings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps free text onto a Status. Anything unrecognised is pending.
func ParseStatus(s string) Status {
	st, ok := LookupStatus(s)
	if !ok {
		return StatusPending
	}
	return st
}

// LookupStatus reports whether s names one of the known statuses.
func LookupStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// OrderDraft is what checkout hands over before the store assigns identity.
type OrderDraft struct {
	OrderID   string  `json:"orderId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Country   string  `json:"country"`
	PlanID    string  `json:"planId"`
	PlanTitle string  `json:"planTitle"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Duration  int     `json:"duration"`
	Note      string  `json:"note,omitempty"`
	Status    Status  `json:"status"`
}

type Order struct {
	ID string `json:"id"`
	OrderDraft
	CreatedAt string `json:"createdAt"` // RFC 3339, never mutated
}

// StatusOverrides holds admin edits keyed by business order id.
type StatusOverrides map[string]Status
