package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models
type SubscriptionMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

// SubscriptionMapperImpl is the concrete implementation of SubscriptionMapper
type SubscriptionMapperImpl struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	frequency, err := vo.NewFrequency(model.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to create frequency value object: %w", err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode subscription metadata: %w", err)
		}
	}

	entity, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		UserSID:       model.UserSID,
		Name:          model.Name,
		Price:         model.Price,
		Currency:      model.Currency,
		Frequency:     frequency,
		Category:      model.Category,
		PaymentMethod: model.PaymentMethod,
		Status:        status,
		StartDate:     model.StartDate,
		RenewalDate:   model.RenewalDate,
		Metadata:      metadata,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	metadata, err := json.Marshal(entity.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to encode subscription metadata: %w", err)
	}

	return &models.SubscriptionModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		UserSID:       entity.UserSID(),
		Name:          entity.Name(),
		Price:         entity.Price(),
		Currency:      entity.Currency(),
		Frequency:     entity.Frequency().String(),
		Category:      entity.Category(),
		PaymentMethod: entity.PaymentMethod(),
		Status:        entity.Status().String(),
		StartDate:     entity.StartDate(),
		RenewalDate:   entity.RenewalDate(),
		Metadata:      datatypes.JSON(metadata),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *SubscriptionMapperImpl) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for _, model := range subModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
