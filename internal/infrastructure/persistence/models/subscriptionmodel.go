package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/subwatch-inc/subwatch/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. The owner is stored as the user's public SID so the
// ownership check compares identifiers without a join.
type SubscriptionModel struct {
	ID            uint    `gorm:"primarykey"`
	SID           string  `gorm:"column:sid;uniqueIndex;not null;size:32"`
	UserSID       string  `gorm:"column:user_sid;index:idx_subscriptions_user_sid;not null;size:32"`
	Name          string  `gorm:"not null;size:100"`
	Price         float64 `gorm:"not null"`
	Currency      string  `gorm:"not null;size:10"`
	Frequency     string  `gorm:"not null;size:20"`
	Category      string  `gorm:"size:50"`
	PaymentMethod string  `gorm:"size:50"`
	Status        string  `gorm:"not null;default:active;size:20;index:idx_subscriptions_status"`
	StartDate     time.Time
	RenewalDate   time.Time      `gorm:"index:idx_subscriptions_renewal_date"`
	Metadata      datatypes.JSON `gorm:"type:json"`
	Version       int            `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = "active"
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
