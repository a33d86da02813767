package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/metrics"
	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/utils/tagx"
)

// ArticleParams 新建 / 更新文章的表单参数
type ArticleParams struct {
	Title       string
	TagsText    string
	Body        string
	Note        string
	PublishType string
	// UserID 当前操作用户
	UserID uint64
}

// Build 时写入文章的列（不含计数缓存）
var articleContentColumns = []string{"title", "body", "tags", "note", "publish_state", "updated_at"}

// ArticleBuilder 将表单参数转换为新的 Revision，并同步到文章上
//
// 新建与更新是同一个操作，区别仅在于文章是否已有 ID
type ArticleBuilder struct {
	db       *gorm.DB
	article  *model.Article
	revision *model.Revision
}

// NewArticleBuilder ...
func NewArticleBuilder(db *gorm.DB, article *model.Article) *ArticleBuilder {
	return &ArticleBuilder{db: db, article: article}
}

// Revision 最近一次 Build 构造的 Revision（校验失败时未落库）
func (b *ArticleBuilder) Revision() *model.Revision {
	return b.revision
}

// Build 校验并保存 Revision，然后更新文章的内容字段与发布状态
//
// 校验失败时返回 ValidationErrors，不落库；落库失败时文章恢复到 Build 之前的状态
func (b *ArticleBuilder) Build(ctx context.Context, params ArticleParams) error {
	logger := logging.GetWebLogger().WithFields(logrus.Fields{
		"articleID": b.article.ID,
		"userID":    params.UserID,
	})

	if b.article.IsPersisted() && !b.article.IsOwnedBy(params.UserID) {
		return errors.Wrapf(ErrForbidden, "user %d is not the owner of article %d", params.UserID, b.article.ID)
	}

	input := RevisionInput{Title: params.Title, Body: params.Body, Note: params.Note}
	b.revision = NewRevision(input, params.UserID, model.RevisionTypeCommitted)
	if b.article.IsPersisted() {
		b.revision.ArticleID = &b.article.ID
	}

	state, err := b.validate(params)
	if err != nil {
		metrics.ArticleBuildTotal.WithLabelValues(metrics.BuildResultInvalid).Inc()
		return err
	}

	snapshot := *b.article
	if !b.article.IsPersisted() {
		b.article.UserID = params.UserID
	}

	err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 新文章需要先落库拿到 ID，Revision 才能关联上
		if !b.article.IsPersisted() {
			if err := tx.Omit(clause.Associations).Create(b.article).Error; err != nil {
				return errors.Wrap(err, "create article")
			}
			b.revision.ArticleID = &b.article.ID
		}
		if err := tx.Create(b.revision).Error; err != nil {
			return errors.Wrap(err, "create revision")
		}

		b.article.ApplyRevision(b.revision, tagx.Parse(params.TagsText), state)
		// 计数缓存只能由重新统计 / 原子自增修改，这里只更新内容与发布状态
		err := tx.Model(b.article).Select(articleContentColumns).Updates(b.article).Error
		if err != nil {
			return errors.Wrap(err, "save article")
		}
		// 内存中的计数可能已过期，以数据库为准
		var counters struct {
			LikeCount int64
			ViewCount int64
		}
		err = tx.Model(&model.Article{}).
			Select("like_count", "view_count").
			Where("id = ?", b.article.ID).
			Take(&counters).Error
		if err != nil {
			return wrapNotFound(err, "reload article counters")
		}
		b.article.LikeCount, b.article.ViewCount = counters.LikeCount, counters.ViewCount
		return nil
	})
	if err != nil {
		*b.article = snapshot
		b.revision.ID = 0
		if !snapshot.IsPersisted() {
			b.revision.ArticleID = nil
		}
		metrics.ArticleBuildTotal.WithLabelValues(metrics.BuildResultError).Inc()
		logger.WithError(err).Error("failed to build article")
		return err
	}

	metrics.ArticleBuildTotal.WithLabelValues(metrics.BuildResultOK).Inc()
	logger.WithFields(logrus.Fields{
		"articleID":    b.article.ID,
		"revisionID":   b.revision.ID,
		"publishState": b.article.PublishState,
	}).Info("article built")
	return nil
}

// 校验 Revision 与发布类型，两者的错误合并返回
func (b *ArticleBuilder) validate(params ArticleParams) (model.PublishState, error) {
	var verrs ValidationErrors

	if err := ValidateRevision(b.revision); err != nil {
		revErrs, ok := AsValidationErrors(err)
		if !ok {
			return "", err
		}
		verrs = append(verrs, revErrs...)
	}

	// 更新已有文章时未指定发布类型，则保持当前状态
	state := b.article.PublishState
	var err error
	if !b.article.IsPersisted() || params.PublishType != "" {
		state, err = model.ParsePublishState(params.PublishType)
	}
	if err != nil {
		verrs = append(verrs, FieldError{Field: "publish_type", Message: "is not included in the list"})
	}

	if len(verrs) != 0 {
		return "", verrs
	}
	return state, nil
}
