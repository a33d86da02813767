package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/goarticle/pkg/common/errcode"
	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/service"
	"github.com/narasux/goarticle/pkg/utils/ginx"
	"github.com/narasux/goarticle/pkg/utils/jwtx"
)

// Authenticate 解析 Bearer Token 并设置当前用户；未携带 Token 时视为匿名访问
func Authenticate(signer *jwtx.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ginx.GetBearerToken(c.Request)
		if token == "" {
			c.Next()
			return
		}

		username, err := signer.Parse(token)
		if err != nil {
			code := errcode.TokenInvalid
			if errors.Is(err, jwtx.ErrTokenExpired) {
				code = errcode.TokenExpired
			}
			ginx.SetError(c, err)
			ginx.AbortWithErrResp(c, http.StatusUnauthorized, code, err.Error())
			return
		}

		user, err := service.GetUserByName(c.Request.Context(), database.Client(c.Request.Context()), username)
		if err != nil {
			ginx.SetError(c, err)
			if errors.Is(err, service.ErrNotFound) {
				ginx.AbortWithErrResp(c, http.StatusUnauthorized, errcode.TokenInvalid, "user of token not exists")
				return
			}
			ginx.AbortWithErrResp(c, http.StatusInternalServerError, errcode.Unknown, err.Error())
			return
		}
		ginx.SetCurrentUser(c, user)

		c.Next()
	}
}

// LoginRequired 要求已登录
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ginx.GetCurrentUser(c) == nil {
			ginx.AbortWithErrResp(c, http.StatusUnauthorized, errcode.Unauthorized, "login required")
			return
		}
		c.Next()
	}
}
