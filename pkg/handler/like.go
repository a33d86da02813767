package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/goarticle/pkg/common/errcode"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/service"
	"github.com/narasux/goarticle/pkg/utils/ginx"
)

// LikeArticle 点赞文章（重复点赞不会重复计数）
func LikeArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil {
		return
	}
	article := loadArticle(c, user)
	if article == nil {
		return
	}

	ctx := c.Request.Context()
	result, err := service.NewLikeToggler(database.Client(ctx)).
		Toggle(ctx, ginx.GetCurrentUserID(c), article, service.LikeActionLike)
	if err != nil {
		if errors.Is(err, service.ErrLikeConflict) {
			ginx.SetError(c, err)
			ginx.SetErrRespWithData(c, http.StatusBadRequest, errcode.LikeFailed, err.Error(), gin.H{
				"articleID": article.ID,
			})
			return
		}
		setErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, result)
}

// UnlikeArticle 取消点赞（未点赞时同样返回成功）
func UnlikeArticle(c *gin.Context) {
	user := loadUser(c)
	if user == nil {
		return
	}
	article := loadArticle(c, user)
	if article == nil {
		return
	}

	ctx := c.Request.Context()
	_, err := service.NewLikeToggler(database.Client(ctx)).
		Toggle(ctx, ginx.GetCurrentUserID(c), article, service.LikeActionUnlike)
	if err != nil {
		setErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusNoContent, nil)
}
