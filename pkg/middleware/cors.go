package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/utils/ginx"
)

// Cors 跨域配置，未指定 AllowedOrigins 时允许所有来源
func Cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", ginx.AuthorizationHeaderKey, ginx.RequestIDHeaderKey},
		ExposeHeaders:    []string{ginx.RequestIDHeaderKey},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := lo.Filter(lo.Map(strings.Split(envs.AllowedOrigins, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool {
		return s != ""
	})
	if len(origins) == 0 {
		// 允许所有来源且需要携带 Cookie 时，只能回显请求的 Origin
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
