package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/model"
)

func TestMigrate(t *testing.T) {
	db, err := database.NewSqliteClient(":memory:")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db, ""))

	for _, table := range []any{&model.User{}, &model.Article{}, &model.Revision{}, &model.Like{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&model.Like{}, "uniq_like_user_target"))

	// 重复执行不会报错
	assert.NoError(t, database.Migrate(db, ""))
}

func TestRollback(t *testing.T) {
	db, err := database.NewSqliteClient(":memory:")
	require.NoError(t, err)
	database.SetClient(db)

	ctx := context.Background()
	require.NoError(t, database.RunMigrate(ctx, ""))
	version, err := database.Version(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, version)

	require.NoError(t, database.RunRollback(ctx, ""))
	assert.False(t, db.Migrator().HasTable(&model.Article{}))
	assert.False(t, db.Migrator().HasTable(&model.Like{}))
}
