// Package dto defines the transport representations of subscription
// records returned by the application layer.
package dto

import (
	"time"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
)

// SubscriptionDTO is the outward representation of a subscription record.
type SubscriptionDTO struct {
	ID            string                 `json:"id"`
	Owner         string                 `json:"owner"`
	Name          string                 `json:"name"`
	Price         float64                `json:"price"`
	Currency      string                 `json:"currency,omitempty"`
	Frequency     string                 `json:"frequency"`
	Category      string                 `json:"category,omitempty"`
	PaymentMethod string                 `json:"paymentMethod,omitempty"`
	Status        string                 `json:"status"`
	StartDate     time.Time              `json:"startDate"`
	RenewalDate   time.Time              `json:"renewalDate"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// ToSubscriptionDTO converts a domain subscription to its DTO.
func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	metadata := sub.Metadata()
	if len(metadata) == 0 {
		metadata = nil
	}

	return &SubscriptionDTO{
		ID:            sub.SID(),
		Owner:         sub.UserSID(),
		Name:          sub.Name(),
		Price:         sub.Price(),
		Currency:      sub.Currency(),
		Frequency:     sub.Frequency().String(),
		Category:      sub.Category(),
		PaymentMethod: sub.PaymentMethod(),
		Status:        sub.Status().String(),
		StartDate:     sub.StartDate(),
		RenewalDate:   sub.RenewalDate(),
		Metadata:      metadata,
		CreatedAt:     sub.CreatedAt(),
		UpdatedAt:     sub.UpdatedAt(),
	}
}

// ToSubscriptionDTOs converts a slice of domain subscriptions.
func ToSubscriptionDTOs(subs []*subscription.Subscription) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		dtos = append(dtos, ToSubscriptionDTO(sub))
	}
	return dtos
}
