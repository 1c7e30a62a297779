package subscription

import (
	"fmt"
	"time"

	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/id"
)

// Subscription represents the subscription aggregate root. The owner
// reference is set at creation and never changes through an update.
type Subscription struct {
	internalID    uint
	sid           string
	userSID       string
	name          string
	price         float64
	currency      string
	frequency     vo.Frequency
	category      string
	paymentMethod string
	status        vo.Status
	startDate     time.Time
	renewalDate   time.Time
	metadata      map[string]interface{}
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSubscriptionParams carries the caller-supplied fields for a new
// subscription. RenewalDate is optional; when absent it is derived from
// the start date and frequency.
type NewSubscriptionParams struct {
	UserSID       string
	Name          string
	Price         float64
	Currency      string
	Frequency     vo.Frequency
	Category      string
	PaymentMethod string
	StartDate     time.Time
	RenewalDate   *time.Time
	Metadata      map[string]interface{}
}

// NewSubscription creates a new subscription owned by the given user.
// Status starts as active.
func NewSubscription(p NewSubscriptionParams) (*Subscription, error) {
	userSID := NormalizeIdentity(p.UserSID)
	if userSID == "" {
		return nil, fmt.Errorf("owner user SID is required")
	}
	if len(p.Name) < 2 || len(p.Name) > 100 {
		return nil, fmt.Errorf("subscription name must be between 2 and 100 characters")
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("price must be greater than or equal to 0")
	}
	if p.StartDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}

	renewalDate := p.Frequency.NextRenewal(p.StartDate)
	if p.RenewalDate != nil {
		renewalDate = p.RenewalDate.UTC()
	}
	if !renewalDate.After(p.StartDate) {
		return nil, ErrInvalidRenewalDate
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:           id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		userSID:       userSID,
		name:          p.Name,
		price:         p.Price,
		currency:      p.Currency,
		frequency:     p.Frequency,
		category:      p.Category,
		paymentMethod: p.PaymentMethod,
		status:        vo.StatusActive,
		startDate:     p.StartDate.UTC(),
		renewalDate:   renewalDate,
		metadata:      metadata,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructParams carries every persisted field of a subscription.
type ReconstructParams struct {
	ID            uint
	SID           string
	UserSID       string
	Name          string
	Price         float64
	Currency      string
	Frequency     vo.Frequency
	Category      string
	PaymentMethod string
	Status        vo.Status
	StartDate     time.Time
	RenewalDate   time.Time
	Metadata      map[string]interface{}
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.SID == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if p.UserSID == "" {
		return nil, fmt.Errorf("owner user SID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Subscription{
		internalID:    p.ID,
		sid:           p.SID,
		userSID:       NormalizeIdentity(p.UserSID),
		name:          p.Name,
		price:         p.Price,
		currency:      p.Currency,
		frequency:     p.Frequency,
		category:      p.Category,
		paymentMethod: p.PaymentMethod,
		status:        p.Status,
		startDate:     p.StartDate,
		renewalDate:   p.RenewalDate,
		metadata:      metadata,
		version:       p.Version,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

// ID returns the internal persistence ID
func (s *Subscription) ID() uint {
	return s.internalID
}

// SID returns the public subscription identifier (sub_xxx)
func (s *Subscription) SID() string {
	return s.sid
}

// UserSID returns the owner's public identifier
func (s *Subscription) UserSID() string {
	return s.userSID
}

// Name returns the subscription name
func (s *Subscription) Name() string {
	return s.name
}

// Price returns the subscription price
func (s *Subscription) Price() float64 {
	return s.price
}

// Currency returns the subscription currency
func (s *Subscription) Currency() string {
	return s.currency
}

// Frequency returns the billing frequency
func (s *Subscription) Frequency() vo.Frequency {
	return s.frequency
}

// Category returns the subscription category
func (s *Subscription) Category() string {
	return s.category
}

// PaymentMethod returns the payment method label
func (s *Subscription) PaymentMethod() string {
	return s.paymentMethod
}

// Status returns the subscription status
func (s *Subscription) Status() vo.Status {
	return s.status
}

// StartDate returns the subscription start date
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// RenewalDate returns the next renewal date
func (s *Subscription) RenewalDate() time.Time {
	return s.renewalDate
}

// Metadata returns the opaque descriptive fields passed through unchanged
func (s *Subscription) Metadata() map[string]interface{} {
	return s.metadata
}

// Version returns the aggregate version
func (s *Subscription) Version() int {
	return s.version
}

// CreatedAt returns when the subscription was created
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the subscription was last updated
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the internal ID (only for persistence layer use)
func (s *Subscription) SetID(internalID uint) error {
	if s.internalID != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if internalID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.internalID = internalID
	return nil
}

// Cancel transitions the subscription to cancelled. Cancelling an already
// cancelled subscription succeeds and changes nothing.
func (s *Subscription) Cancel() {
	if s.status == vo.StatusCancelled {
		return
	}

	s.status = vo.StatusCancelled
	s.updatedAt = time.Now().UTC()
	s.version++
}

// UpdateParams carries the optional fields of a generic update. The owner
// reference is absent on purpose: ownership never transfers through an
// update.
type UpdateParams struct {
	Name          *string
	Price         *float64
	Currency      *string
	Frequency     *vo.Frequency
	Category      *string
	PaymentMethod *string
	Status        *vo.Status
	RenewalDate   *time.Time
	Metadata      map[string]interface{}
}

// ApplyUpdate merges the payload over the existing record. Status may be
// set to any schema-valid value; the state machine is not enforced here.
func (s *Subscription) ApplyUpdate(p UpdateParams) error {
	if p.Name != nil {
		if len(*p.Name) < 2 || len(*p.Name) > 100 {
			return fmt.Errorf("subscription name must be between 2 and 100 characters")
		}
		s.name = *p.Name
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return fmt.Errorf("price must be greater than or equal to 0")
		}
		s.price = *p.Price
	}
	if p.Currency != nil {
		s.currency = *p.Currency
	}
	if p.Frequency != nil {
		s.frequency = *p.Frequency
	}
	if p.Category != nil {
		s.category = *p.Category
	}
	if p.PaymentMethod != nil {
		s.paymentMethod = *p.PaymentMethod
	}
	if p.Status != nil {
		if !vo.ValidStatuses[*p.Status] {
			return fmt.Errorf("invalid subscription status: %s", *p.Status)
		}
		s.status = *p.Status
	}
	if p.RenewalDate != nil {
		renewal := p.RenewalDate.UTC()
		if !renewal.After(s.startDate) {
			return ErrInvalidRenewalDate
		}
		s.renewalDate = renewal
	}
	if p.Metadata != nil {
		s.metadata = p.Metadata
	}

	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// IsRenewalDue reports whether the renewal date falls inside [from, to].
func (s *Subscription) IsRenewalDue(from, to time.Time) bool {
	return !s.renewalDate.Before(from) && !s.renewalDate.After(to)
}
