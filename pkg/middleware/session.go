package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/utils/ginx"
	"github.com/narasux/goarticle/pkg/utils/uuid"
)

// Session 为访问者分配会话 ID（存放于 Cookie），会话数据本身由 session.Store 管理
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(envs.SessionCookieName)
		if err != nil || !uuid.IsUUID4Hex(sessionID) {
			sessionID = uuid.GenUUID4()
		}
		ginx.SetSessionID(c, sessionID)

		// 每次访问都刷新 Cookie 有效期
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(
			envs.SessionCookieName, sessionID, int(envs.SessionTTL.Seconds()),
			"/", "", envs.DomainScheme == "https", true,
		)

		c.Next()
	}
}
