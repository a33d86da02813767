package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/metrics"
	"github.com/narasux/goarticle/pkg/model"
)

// 点赞动作
const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

// ErrUnknownLikeAction ...
var ErrUnknownLikeAction = errors.New("unknown like action")

// LikeResult 点赞 / 取消点赞结果
type LikeResult struct {
	ArticleID uint64 `json:"articleID"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"likeCount"`
}

// LikeToggler 点赞服务，重复点赞 / 取消点赞都是幂等的
//
// 文章的 like_count 每次都按点赞记录重新统计，而不是加减，并发下最终也能收敛到正确的值
type LikeToggler struct {
	db *gorm.DB
}

// NewLikeToggler ...
func NewLikeToggler(db *gorm.DB) *LikeToggler {
	return &LikeToggler{db: db}
}

// Toggle 根据 want（like / unlike）执行对应动作
func (t *LikeToggler) Toggle(ctx context.Context, userID uint64, article *model.Article, want string) (*LikeResult, error) {
	switch want {
	case LikeActionLike:
		return t.Like(ctx, userID, article)
	case LikeActionUnlike:
		return t.Unlike(ctx, userID, article)
	}
	return nil, errors.Wrapf(ErrUnknownLikeAction, "%q", want)
}

// Like 点赞，已点赞时不会重复创建记录
func (t *LikeToggler) Like(ctx context.Context, userID uint64, article *model.Article) (*LikeResult, error) {
	like, err := t.findOrInit(ctx, userID, article)
	if err != nil {
		return nil, err
	}

	if !like.IsPersisted() {
		if err = t.db.WithContext(ctx).Create(like).Error; err != nil {
			metrics.LikeActionTotal.WithLabelValues(LikeActionLike, "conflict").Inc()
			logging.GetWebLogger().WithFields(logrus.Fields{
				"articleID": article.ID,
				"userID":    userID,
			}).WithError(err).Warn("failed to save like")
			return nil, errors.Wrap(ErrLikeConflict, err.Error())
		}
	}

	if err = t.recount(ctx, article); err != nil {
		return nil, err
	}
	metrics.LikeActionTotal.WithLabelValues(LikeActionLike, "ok").Inc()
	return &LikeResult{ArticleID: article.ID, Liked: true, LikeCount: article.LikeCount}, nil
}

// Unlike 取消点赞，未点赞时为空操作（仍会重新统计点赞数）
func (t *LikeToggler) Unlike(ctx context.Context, userID uint64, article *model.Article) (*LikeResult, error) {
	like, err := t.findOrInit(ctx, userID, article)
	if err != nil {
		return nil, err
	}

	if like.IsPersisted() {
		if err = t.db.WithContext(ctx).Delete(like).Error; err != nil {
			return nil, errors.Wrap(err, "delete like")
		}
	}

	if err = t.recount(ctx, article); err != nil {
		return nil, err
	}
	metrics.LikeActionTotal.WithLabelValues(LikeActionUnlike, "ok").Inc()
	return &LikeResult{ArticleID: article.ID, Liked: false, LikeCount: article.LikeCount}, nil
}

// IsLiked 用户是否已点赞该文章
func (t *LikeToggler) IsLiked(ctx context.Context, userID uint64, article *model.Article) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	like, err := t.findOrInit(ctx, userID, article)
	if err != nil {
		return false, err
	}
	return like.IsPersisted(), nil
}

// 查找点赞记录，不存在时仅在内存中初始化（未落库）
func (t *LikeToggler) findOrInit(ctx context.Context, userID uint64, article *model.Article) (*model.Like, error) {
	var like model.Like
	// 使用 map 条件，避免结构体条件忽略零值
	cond := map[string]any{"user_id": userID, "target_type": model.LikeTargetArticle, "target_id": article.ID}
	if err := t.db.WithContext(ctx).Where(cond).FirstOrInit(&like).Error; err != nil {
		return nil, errors.Wrap(err, "find like")
	}
	return &like, nil
}

// 按点赞记录重新统计文章的点赞数，并同步到 article 上
func (t *LikeToggler) recount(ctx context.Context, article *model.Article) error {
	db := t.db.WithContext(ctx)

	likes := db.Model(&model.Like{}).
		Select("COUNT(*)").
		Where("target_type = ? AND target_id = ?", model.LikeTargetArticle, article.ID)
	err := db.Model(&model.Article{}).Where("id = ?", article.ID).UpdateColumn("like_count", likes).Error
	if err != nil {
		return errors.Wrap(err, "update like count")
	}

	var counts []int64
	if err = db.Model(&model.Article{}).Where("id = ?", article.ID).Pluck("like_count", &counts).Error; err != nil {
		return errors.Wrap(err, "reload like count")
	}
	if len(counts) == 0 {
		return errors.Wrapf(ErrNotFound, "article %d", article.ID)
	}
	article.LikeCount = counts[0]
	return nil
}
