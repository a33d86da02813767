package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/model"
)

func TestLikeIdempotent(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)
	toggler := NewLikeToggler(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := toggler.Toggle(ctx, fan.ID, article, LikeActionLike)
		require.NoError(t, err)
		assert.Equal(t, &LikeResult{ArticleID: article.ID, Liked: true, LikeCount: 1}, result)
	}
	assert.Equal(t, int64(1), countRows(t, db, &model.Like{}))
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).LikeCount)

	liked, err := toggler.IsLiked(ctx, fan.ID, article)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestUnlikeWithoutLike(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")
	other := createTestUser(t, db, "carol")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)
	toggler := NewLikeToggler(db)
	ctx := context.Background()

	_, err := toggler.Like(ctx, other.ID, article)
	require.NoError(t, err)

	result, err := toggler.Toggle(ctx, fan.ID, article, LikeActionUnlike)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
	assert.Equal(t, int64(1), countRows(t, db, &model.Like{}))
}

func TestLikeThenUnlike(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)
	toggler := NewLikeToggler(db)
	ctx := context.Background()

	_, err := toggler.Like(ctx, fan.ID, article)
	require.NoError(t, err)
	assert.Equal(t, int64(1), article.LikeCount)

	result, err := toggler.Unlike(ctx, fan.ID, article)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.LikeCount)
	assert.Equal(t, int64(0), article.LikeCount)
	assert.Equal(t, int64(0), countRows(t, db, &model.Like{}))

	liked, err := toggler.IsLiked(ctx, fan.ID, article)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeCountRecountFixesDrift(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)

	require.NoError(t, db.Model(article).UpdateColumn("like_count", 42).Error)

	result, err := NewLikeToggler(db).Unlike(context.Background(), fan.ID, article)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.LikeCount)
	assert.Equal(t, int64(0), reloadArticle(t, db, article.ID).LikeCount)
}

func TestLikeSaveFailure(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)
	require.NoError(t, db.Model(article).UpdateColumn("like_count", 3).Error)

	// 模拟并发点赞触发唯一约束
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_like", func(tx *gorm.DB) {
		if tx.Statement.Table == "likes" {
			_ = tx.AddError(errors.New("UNIQUE constraint failed"))
		}
	})
	require.NoError(t, err)

	_, err = NewLikeToggler(db).Like(context.Background(), fan.ID, article)
	assert.True(t, errors.Is(err, ErrLikeConflict))
	// 点赞数不受影响
	assert.Equal(t, int64(3), reloadArticle(t, db, article.ID).LikeCount)
}

func TestToggleUnknownAction(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)

	_, err := NewLikeToggler(db).Toggle(context.Background(), owner.ID, article, "love")
	assert.True(t, errors.Is(err, ErrUnknownLikeAction))
}

func TestIsLikedAnonymous(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)

	liked, err := NewLikeToggler(db).IsLiked(context.Background(), 0, article)
	require.NoError(t, err)
	assert.False(t, liked)
}
