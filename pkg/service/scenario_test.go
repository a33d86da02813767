package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/session"
)

// 草稿 -> 发布 -> 阅读 -> 点赞 -> 取消点赞 的完整流程
func TestArticleLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u1 := createTestUser(t, db, "u1")
	u2 := createTestUser(t, db, "u2")
	tracker := NewViewTracker(db, session.NewMemoryStore())
	toggler := NewLikeToggler(db)

	article := &model.Article{}
	require.NoError(t, NewArticleBuilder(db, article).Build(ctx, ArticleParams{Title: "draft", UserID: u1.ID}))
	require.Equal(t, model.PublishStateDraft, article.PublishState)

	visibility, err := tracker.ViewArticle(ctx, "u2-session", article, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityDeny, visibility)

	require.NoError(t, NewArticleBuilder(db, article).Build(ctx, ArticleParams{
		Title: "Hello", PublishType: "published", UserID: u1.ID,
	}))
	assert.Equal(t, "Hello", article.Title)
	assert.Equal(t, model.PublishStatePublished, article.PublishState)
	revisions, err := ListArticleRevisions(ctx, db, article)
	require.NoError(t, err)
	assert.Len(t, revisions, 2)
	assert.Equal(t, "Hello", revisions[0].Title)

	visibility, err = tracker.ViewArticle(ctx, "u2-session", article, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityAllow, visibility)
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).ViewCount)

	result, err := toggler.Toggle(ctx, u2.ID, article, LikeActionLike)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.LikeCount)

	result, err = toggler.Toggle(ctx, u2.ID, article, LikeActionLike)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.LikeCount)

	result, err = toggler.Toggle(ctx, u2.ID, article, LikeActionUnlike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.LikeCount)
	assert.Equal(t, int64(0), reloadArticle(t, db, article.ID).LikeCount)
}
