package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/goarticle/pkg/utils/ginx"
	"github.com/narasux/goarticle/pkg/utils/uuid"
)

// RequestID 沿用客户端传入的合法 Request ID，否则重新生成
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ginx.RequestIDHeaderKey)
		if !uuid.IsUUID4Hex(requestID) {
			requestID = uuid.GenUUID4()
		}
		ginx.SetRequestID(c, requestID)
		c.Writer.Header().Set(ginx.RequestIDHeaderKey, requestID)

		c.Next()
	}
}
