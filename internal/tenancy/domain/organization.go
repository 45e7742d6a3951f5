package domain

import (
	"errors"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

var ErrUnknownSubscriptionStatus = errors.New("domain: unknown subscription status")

func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch SubscriptionStatus(s) {
	case SubscriptionActive, SubscriptionInactive:
		return SubscriptionStatus(s), nil
	}
	return "", ErrUnknownSubscriptionStatus
}

type Organization struct {
	ID                 string
	Name               string
	SubscriptionStatus SubscriptionStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive reports whether members of the organization may act at all.
// An inactive subscription blocks every principal in the organization
// regardless of their role.
func (o Organization) IsActive() bool {
	return o.SubscriptionStatus == SubscriptionActive
}
