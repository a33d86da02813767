package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/infras/database"
	_ "github.com/narasux/goarticle/pkg/migration"
	"github.com/narasux/goarticle/pkg/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewSqliteClient(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, ""))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	user, err := CreateUser(context.Background(), db, name)
	require.NoError(t, err)
	return user
}

// 直接落库一篇文章（绕过 ArticleBuilder，用于准备计数相关的数据）
func createTestArticle(t *testing.T, db *gorm.DB, owner *model.User, state model.PublishState) *model.Article {
	article := &model.Article{
		UserID:       owner.ID,
		Title:        fmt.Sprintf("article of %s", owner.Name),
		PublishState: state,
		Tags:         []string{},
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	var count int64
	require.NoError(t, db.Model(m).Count(&count).Error)
	return count
}

func reloadArticle(t *testing.T, db *gorm.DB, id uint64) *model.Article {
	var article model.Article
	require.NoError(t, db.First(&article, id).Error)
	return &article
}
