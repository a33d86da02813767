// Package migration stores all database migrations
package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/model"
)

func init() {
	// Do Not Edit Migration ID!
	migrationID := "20250323_123456"

	database.RegisterMigration(&gormigrate.Migration{
		ID: migrationID,
		Migrate: func(tx *gorm.DB) error {
			logApplying(migrationID)

			return tx.AutoMigrate(&model.User{}, &model.Article{}, &model.Revision{}, &model.Like{})
		},
		Rollback: func(tx *gorm.DB) error {
			logRollingBack(migrationID)

			return tx.Migrator().DropTable(&model.Like{}, &model.Revision{}, &model.Article{}, &model.User{})
		},
	})
}
