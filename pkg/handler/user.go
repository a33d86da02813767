package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/service"
	"github.com/narasux/goarticle/pkg/utils/ginx"
)

// feed 中文章摘要的最大长度
const feedDescMaxLength = 200

// UserPage 用户主页数据
type UserPage struct {
	User     *model.User     `json:"user"`
	Articles []model.Article `json:"articles"`
}

// GetUser 用户主页，本人访问时包含草稿
func GetUser(c *gin.Context) {
	user := loadUser(c)
	if user == nil {
		return
	}

	ctx := c.Request.Context()
	isOwner := ginx.GetCurrentUserID(c) == user.ID
	articles, err := service.ListUserArticles(ctx, database.Client(ctx), user, isOwner)
	if err != nil {
		setErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, UserPage{User: user, Articles: articles})
}

// GetUserFeed 用户已发布文章的 Atom 订阅
func GetUserFeed(c *gin.Context) {
	user := loadUser(c)
	if user == nil {
		return
	}

	ctx := c.Request.Context()
	articles, err := service.ListUserArticles(ctx, database.Client(ctx), user, false)
	if err != nil {
		setErrResp(c, err)
		return
	}

	baseURL := fmt.Sprintf("%s://%s", envs.DomainScheme, envs.Domain)
	author := &feeds.Author{Name: user.Name}
	feed := &feeds.Feed{
		Title:   fmt.Sprintf("%s's articles", user.Name),
		Link:    &feeds.Link{Href: baseURL + userPath(user.Name)},
		Author:  author,
		Updated: time.Now(),
	}
	for _, article := range articles {
		link := fmt.Sprintf("%s%s/articles/%d", baseURL, userPath(user.Name), article.ID)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatUint(article.ID, 10),
			Title:       article.Title,
			Link:        &feeds.Link{Href: link},
			Description: stringx.Truncate(article.Body, feedDescMaxLength),
			Author:      author,
			Created:     article.CreatedAt,
			Updated:     article.UpdatedAt,
		})
	}
	atom, err := feed.ToAtom()
	if err != nil {
		setErrResp(c, err)
		return
	}

	// 不直接使用 c.XML() 以避免被包装 <string></string>
	c.Writer.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	_, _ = c.Writer.Write([]byte(atom))
}
