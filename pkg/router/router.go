package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/handler"
	"github.com/narasux/goarticle/pkg/middleware"
	"github.com/narasux/goarticle/pkg/utils/jwtx"
)

// NewRouter 组装路由（不启动服务）
func NewRouter(signer *jwtx.Signer) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(gin.Recovery())

	// 404
	router.NoRoute(handler.Get404)
	router.GET("healthz", handler.Healthz)
	router.GET("metrics", gin.WrapH(promhttp.Handler()))

	// api 路由
	apiRg := router.Group("apis")
	apiRg.Use(middleware.Session())
	apiRg.Use(middleware.Authenticate(signer))
	{
		userRg := apiRg.Group("users/:name")
		// 用户主页
		userRg.GET("", handler.GetUser)
		// 订阅
		userRg.GET("feed", handler.GetUserFeed)
		// 文章列表
		userRg.GET("articles", handler.ListArticles)
		// 文章详情
		userRg.GET("articles/:id", handler.RetrieveArticle)

		// 以下操作需要登录
		authRg := userRg.Group("", middleware.LoginRequired())
		authRg.POST("articles", handler.CreateArticle)
		authRg.POST("articles/preview", handler.PreviewArticle)
		authRg.GET("articles/:id/edit", handler.EditArticle)
		authRg.PUT("articles/:id", handler.UpdateArticle)
		authRg.DELETE("articles/:id", handler.DestroyArticle)
		// 点赞 / 取消点赞
		authRg.POST("articles/:id/like", handler.LikeArticle)
		authRg.DELETE("articles/:id/like", handler.UnlikeArticle)
	}
	return router
}

// InitRouter 启动 web 服务
func InitRouter() {
	gin.SetMode(envs.GinRunMode)
	router := NewRouter(jwtx.NewSigner(envs.JWTSecret, envs.JWTIssuer))

	if err := router.Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}
