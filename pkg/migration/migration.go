// Package migration stores all database migrations
package migration

import (
	"github.com/narasux/goarticle/pkg/logging"
)

func logApplying(migrationID string) {
	logging.GetSystemLogger().WithField("migrationID", migrationID).Info("applying migration")
}

func logRollingBack(migrationID string) {
	logging.GetSystemLogger().WithField("migrationID", migrationID).Info("rolling back migration")
}
