package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/session"
)

func TestRecordViewDedup(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)
	tracker := NewViewTracker(db, session.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, tracker.RecordView(ctx, "sid", article))
	require.NoError(t, tracker.RecordView(ctx, "sid", article))
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).ViewCount)
	assert.Equal(t, int64(1), article.ViewCount)

	// 另一个会话会重新计数
	require.NoError(t, tracker.RecordView(ctx, "another", article))
	assert.Equal(t, int64(2), reloadArticle(t, db, article.ID).ViewCount)
}

func TestRecordViewWindowEviction(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	store := session.NewMemoryStore()
	tracker := NewViewTracker(db, store)
	ctx := context.Background()

	articles := make([]*model.Article, 0, session.VisitedCapacity+1)
	for i := 0; i < session.VisitedCapacity+1; i++ {
		articles = append(articles, createTestArticle(t, db, owner, model.PublishStatePublished))
	}
	for _, article := range articles {
		require.NoError(t, tracker.RecordView(ctx, "sid", article))
	}
	first := articles[0]
	assert.Equal(t, int64(1), reloadArticle(t, db, first.ID).ViewCount)

	visited, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, session.VisitedCapacity, visited.Len())
	assert.False(t, visited.Contains(first.ID))

	// 第 1 篇已移出窗口，再次阅读会重新计数
	require.NoError(t, tracker.RecordView(ctx, "sid", first))
	assert.Equal(t, int64(2), reloadArticle(t, db, first.ID).ViewCount)

	// 最近阅读过的第 51 篇仍在窗口内
	last := articles[len(articles)-1]
	require.NoError(t, tracker.RecordView(ctx, "sid", last))
	assert.Equal(t, int64(1), reloadArticle(t, db, last.ID).ViewCount)
}

func TestRecordViewWithoutSession(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	article := createTestArticle(t, db, owner, model.PublishStatePublished)
	tracker := NewViewTracker(db, session.NewMemoryStore())

	require.NoError(t, tracker.RecordView(context.Background(), "", article))
	require.NoError(t, tracker.RecordView(context.Background(), "", article))
	assert.Equal(t, int64(2), reloadArticle(t, db, article.ID).ViewCount)
}

func TestViewArticleVisibility(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "alice")
	visitor := createTestUser(t, db, "bob")
	draft := createTestArticle(t, db, owner, model.PublishStateDraft)
	tracker := NewViewTracker(db, session.NewMemoryStore())
	ctx := context.Background()

	cases := []struct {
		name        string
		requesterID uint64
		expect      model.Visibility
	}{
		{"anonymous", 0, model.VisibilityDeny},
		{"visitor", visitor.ID, model.VisibilityDeny},
		{"owner", owner.ID, model.VisibilityRedirectToOwnerView},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			visibility, err := tracker.ViewArticle(ctx, "sid-"+c.name, draft, c.requesterID)
			require.NoError(t, err)
			assert.Equal(t, c.expect, visibility)
		})
	}
	// 草稿不计入阅读数
	assert.Equal(t, int64(0), reloadArticle(t, db, draft.ID).ViewCount)

	published := createTestArticle(t, db, owner, model.PublishStatePublished)
	visibility, err := tracker.ViewArticle(ctx, "sid", published, visitor.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityAllow, visibility)
	assert.Equal(t, int64(1), reloadArticle(t, db, published.ID).ViewCount)
}
