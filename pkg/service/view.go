package service

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/metrics"
	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/session"
)

// ViewTracker 阅读计数：同一会话内最近阅读过的文章不会重复计数
type ViewTracker struct {
	db    *gorm.DB
	store session.Store
}

// NewViewTracker ...
func NewViewTracker(db *gorm.DB, store session.Store) *ViewTracker {
	return &ViewTracker{db: db, store: store}
}

// ViewArticle 判定访问者对文章的可见性，可正常查看时记录一次阅读
func (t *ViewTracker) ViewArticle(
	ctx context.Context, sessionID string, article *model.Article, requesterID uint64,
) (model.Visibility, error) {
	visibility := article.VisibilityFor(requesterID)
	if visibility != model.VisibilityAllow {
		return visibility, nil
	}
	if err := t.RecordView(ctx, sessionID, article); err != nil {
		return visibility, err
	}
	return visibility, nil
}

// RecordView 记录一次阅读，仅用于已发布的文章
//
// 会话的已阅读列表中不存在该文章时，阅读数原子 +1 并将文章放到列表最前
func (t *ViewTracker) RecordView(ctx context.Context, sessionID string, article *model.Article) error {
	// 没有会话（如客户端禁用 Cookie）时无法去重，直接计数
	if sessionID == "" {
		return t.incr(ctx, article)
	}

	visited, err := t.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if visited.Contains(article.ID) {
		metrics.ArticleViewTotal.WithLabelValues(strconv.FormatBool(false)).Inc()
		return nil
	}

	if err = t.incr(ctx, article); err != nil {
		return err
	}

	visited.Push(article.ID)
	if err = t.store.Save(ctx, sessionID, visited); err != nil {
		// 阅读数已经计入，会话保存失败只影响后续去重
		logging.GetWebLogger().WithField("articleID", article.ID).WithError(err).Warn("failed to save visited list")
	}
	return nil
}

// 阅读数原子自增（由数据库完成，不在应用层读改写）
func (t *ViewTracker) incr(ctx context.Context, article *model.Article) error {
	result := t.db.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", article.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return errors.Wrap(result.Error, "increment view count")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "article %d", article.ID)
	}
	article.ViewCount++
	metrics.ArticleViewTotal.WithLabelValues(strconv.FormatBool(true)).Inc()
	return nil
}
