package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/persistence/mappers"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/persistence/models"
	"github.com/subwatch-inc/subwatch/internal/shared/db"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

// SubscriptionRepository implements the subscription repository interface on GORM
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(gdb *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     gdb,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}
	return nil
}

// GetBySID retrieves a subscription by external SID. Returns nil, nil
// when the subscription does not exist.
func (r *SubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.conn(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByUserSID retrieves every subscription owned by the given user,
// newest first
func (r *SubscriptionRepository) GetByUserSID(ctx context.Context, userSID string) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel

	if err := r.conn(ctx).
		Where("user_sid = ?", userSID).
		Order("created_at DESC").
		Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by user SID", "user_sid", userSID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}

// List retrieves one page of subscriptions ordered by creation time,
// plus the total record count
func (r *SubscriptionRepository) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	var subModels []*models.SubscriptionModel
	var total int64

	query := r.conn(ctx).Model(&models.SubscriptionModel{})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(subModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Update persists the current state of the subscription
func (r *SubscriptionRepository) Update(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.conn(ctx).Model(&models.SubscriptionModel{}).
		Where("sid = ?", model.SID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"price":          model.Price,
			"currency":       model.Currency,
			"frequency":      model.Frequency,
			"category":       model.Category,
			"payment_method": model.PaymentMethod,
			"status":         model.Status,
			"start_date":     model.StartDate,
			"renewal_date":   model.RenewalDate,
			"metadata":       model.Metadata,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "sid", model.SID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription not found: %s", model.SID)
	}
	return nil
}

// DeleteBySID removes a subscription permanently
func (r *SubscriptionRepository) DeleteBySID(ctx context.Context, sid string) error {
	result := r.conn(ctx).Where("sid = ?", sid).Delete(&models.SubscriptionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription not found: %s", sid)
	}
	return nil
}

// FindUpcomingRenewals retrieves the user's active subscriptions whose
// renewal date falls inside [from, to], both edges inclusive
func (r *SubscriptionRepository) FindUpcomingRenewals(ctx context.Context, userSID string, from, to time.Time) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel

	if err := r.conn(ctx).
		Where("user_sid = ?", userSID).
		Where("status = ?", vo.StatusActive.String()).
		Where("renewal_date BETWEEN ? AND ?", from, to).
		Order("renewal_date ASC").
		Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to query upcoming renewals", "user_sid", userSID, "error", err)
		return nil, fmt.Errorf("failed to query upcoming renewals: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}
