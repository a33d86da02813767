package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/model"
)

// GetUserByName 根据用户名获取用户
func GetUserByName(ctx context.Context, db *gorm.DB, name string) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, wrapNotFound(err, "get user "+name)
	}
	return &user, nil
}

// CreateUser 创建用户
func CreateUser(ctx context.Context, db *gorm.DB, name string) (*model.User, error) {
	input := struct {
		Name string `json:"name" validate:"required,max=64,username"`
	}{Name: name}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user := model.User{Name: name}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "create user %s", name)
	}
	return &user, nil
}

// GetUserArticle 获取指定用户名下的文章
func GetUserArticle(ctx context.Context, db *gorm.DB, user *model.User, articleID uint64) (*model.Article, error) {
	var article model.Article
	err := db.WithContext(ctx).Where("user_id = ? AND id = ?", user.ID, articleID).First(&article).Error
	if err != nil {
		return nil, wrapNotFound(err, "get article")
	}
	article.User = user
	return &article, nil
}

// ListUserArticles 获取用户的文章列表（按更新时间倒序），includeDrafts 为 false 时仅返回已发布的
func ListUserArticles(ctx context.Context, db *gorm.DB, user *model.User, includeDrafts bool) ([]model.Article, error) {
	query := db.WithContext(ctx).Where("user_id = ?", user.ID)
	if !includeDrafts {
		query = query.Where("publish_state = ?", model.PublishStatePublished)
	}

	var articles []model.Article
	if err := query.Order("updated_at DESC").Order("id DESC").Find(&articles).Error; err != nil {
		return nil, errors.Wrap(err, "list articles")
	}
	return articles, nil
}

// ListArticleRevisions 获取文章的历史版本（新的在前）
func ListArticleRevisions(ctx context.Context, db *gorm.DB, article *model.Article) ([]model.Revision, error) {
	var revisions []model.Revision
	err := db.WithContext(ctx).Where("article_id = ?", article.ID).Order("id DESC").Find(&revisions).Error
	if err != nil {
		return nil, errors.Wrap(err, "list revisions")
	}
	return revisions, nil
}

// DestroyArticle 删除文章，同时删除其点赞记录与历史版本
func DestroyArticle(ctx context.Context, db *gorm.DB, article *model.Article) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"target_type = ? AND target_id = ?", model.LikeTargetArticle, article.ID,
		).Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete likes")
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&model.Revision{}).Error; err != nil {
			return errors.Wrap(err, "delete revisions")
		}
		result := tx.Delete(&model.Article{}, article.ID)
		if result.Error != nil {
			return errors.Wrap(result.Error, "delete article")
		}
		if result.RowsAffected == 0 {
			return errors.Wrapf(ErrNotFound, "article %d", article.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.GetWebLogger().WithField("articleID", article.ID).Info("article destroyed")
	return nil
}
