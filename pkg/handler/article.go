package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/goarticle/pkg/common/errcode"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/service"
	"github.com/narasux/goarticle/pkg/session"
	"github.com/narasux/goarticle/pkg/utils/ginx"
	"github.com/narasux/goarticle/pkg/utils/tagx"
)

// ArticleRequest 新建 / 更新文章的表单
type ArticleRequest struct {
	Title       string `json:"title" form:"title"`
	TagsText    string `json:"tags_text" form:"tags_text"`
	Body        string `json:"body" form:"body"`
	Note        string `json:"note" form:"note"`
	PublishType string `json:"publish_type" form:"publish_type"`
}

// ArticleDetail 文章详情
type ArticleDetail struct {
	*model.Article
	Liked bool `json:"liked"`
}

// ArticleEdit 编辑页数据
type ArticleEdit struct {
	*model.Article
	TagsText  string           `json:"tagsText"`
	Revisions []model.Revision `json:"revisions"`
}

func userPath(name string) string {
	return fmt.Sprintf("/apis/users/%s", name)
}

func editArticlePath(name string, id uint64) string {
	return fmt.Sprintf("/apis/users/%s/articles/%d/edit", name, id)
}

// 获取路径中的用户，不存在时设置 404 响应并返回 nil
func loadUser(c *gin.Context) *model.User {
	ctx := c.Request.Context()
	user, err := service.GetUserByName(ctx, database.Client(ctx), c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return nil
	}
	return user
}

// 获取路径中用户的文章，不存在时设置 404 响应并返回 nil
func loadArticle(c *gin.Context, user *model.User) *model.Article {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "article not found")
		return nil
	}
	ctx := c.Request.Context()
	article, err := service.GetUserArticle(ctx, database.Client(ctx), user, articleID)
	if err != nil {
		setErrResp(c, err)
		return nil
	}
	return article
}

// 只有用户本人可以操作自己名下的文章
func checkOwner(c *gin.Context, user *model.User) bool {
	if ginx.GetCurrentUserID(c) != user.ID {
		setErrResp(c, errors.Wrapf(service.ErrForbidden, "articles of %s", user.Name))
		return false
	}
	return true
}

func bindArticleRequest(c *gin.Context) (*ArticleRequest, bool) {
	var req ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		ginx.SetError(c, err)
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, err.Error())
		return nil, false
	}
	return &req, true
}

// ListArticles 文章列表即用户主页
func ListArticles(c *gin.Context) {
	c.Redirect(http.StatusFound, userPath(c.Param("name")))
}

// CreateArticle 新建文章
func CreateArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil || !checkOwner(c, user) {
		return
	}
	req, ok := bindArticleRequest(c)
	if !ok {
		return
	}
	buildArticle(c, &model.Article{}, req, http.StatusCreated)
}

// UpdateArticle 更新文章，未指定 publish_type 时保持当前发布状态
func UpdateArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil || !checkOwner(c, user) {
		return
	}
	article := loadArticle(c, user)
	if article == nil {
		return
	}
	req, ok := bindArticleRequest(c)
	if !ok {
		return
	}
	buildArticle(c, article, req, http.StatusOK)
}

func buildArticle(c *gin.Context, article *model.Article, req *ArticleRequest, successStatus int) {
	ctx := c.Request.Context()
	err := service.NewArticleBuilder(database.Client(ctx), article).Build(ctx, service.ArticleParams{
		Title:       req.Title,
		TagsText:    req.TagsText,
		Body:        req.Body,
		Note:        req.Note,
		PublishType: req.PublishType,
		UserID:      ginx.GetCurrentUserID(c),
	})
	if err == nil {
		ginx.SetResp(c, successStatus, article)
		return
	}

	// 校验失败时返回文章当前内容与字段错误，便于前端回显
	if verrs, ok := service.AsValidationErrors(err); ok {
		ginx.SetError(c, err)
		ginx.SetErrRespWithData(c, http.StatusBadRequest, errcode.InvalidParams, verrs.Error(), gin.H{
			"article": article,
			"errors":  verrs,
		})
		return
	}
	setErrResp(c, err)
}

// PreviewArticle 预览：只做校验，不保存
func PreviewArticle(c *gin.Context) {
	req, ok := bindArticleRequest(c)
	if !ok {
		return
	}
	input := service.RevisionInput{Title: req.Title, Body: req.Body, Note: req.Note}
	revision, err := service.PreviewRevision(input, ginx.GetCurrentUserID(c))
	if err != nil {
		verrs, _ := service.AsValidationErrors(err)
		ginx.SetError(c, err)
		ginx.SetErrRespWithData(c, http.StatusBadRequest, errcode.InvalidParams, err.Error(), gin.H{
			"revision": revision,
			"errors":   verrs,
		})
		return
	}
	ginx.SetResp(c, http.StatusOK, revision)
}

// RetrieveArticle 文章详情
//
// 未发布的文章：作者跳转到编辑页，其他人无权查看
func RetrieveArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil {
		return
	}
	article := loadArticle(c, user)
	if article == nil {
		return
	}

	ctx := c.Request.Context()
	db := database.Client(ctx)
	requesterID := ginx.GetCurrentUserID(c)

	visibility, err := service.NewViewTracker(db, session.DefaultStore()).
		ViewArticle(ctx, ginx.GetSessionID(c), article, requesterID)
	if err != nil {
		setErrResp(c, err)
		return
	}
	switch visibility {
	case model.VisibilityRedirectToOwnerView:
		c.Redirect(http.StatusFound, editArticlePath(user.Name, article.ID))
		return
	case model.VisibilityDeny:
		setErrResp(c, errors.Wrapf(service.ErrForbidden, "article %d is not published", article.ID))
		return
	}

	liked, err := service.NewLikeToggler(db).IsLiked(ctx, requesterID, article)
	if err != nil {
		setErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, ArticleDetail{Article: article, Liked: liked})
}

// EditArticle 编辑页数据（含历史版本）
func EditArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil || !checkOwner(c, user) {
		return
	}
	article := loadArticle(c, user)
	if article == nil {
		return
	}

	ctx := c.Request.Context()
	revisions, err := service.ListArticleRevisions(ctx, database.Client(ctx), article)
	if err != nil {
		setErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, ArticleEdit{
		Article:   article,
		TagsText:  tagx.Join(article.Tags),
		Revisions: revisions,
	})
}

// DestroyArticle 删除文章，完成后跳转到用户主页
func DestroyArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil || !checkOwner(c, user) {
		return
	}
	article := loadArticle(c, user)
	if article == nil {
		return
	}

	ctx := c.Request.Context()
	if err := service.DestroyArticle(ctx, database.Client(ctx), article); err != nil {
		setErrResp(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, userPath(user.Name))
}
