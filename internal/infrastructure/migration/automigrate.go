package migration

import (
	"github.com/subwatch-inc/subwatch/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SubscriptionModel{},
	}
}
