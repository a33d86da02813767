package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/goarticle/pkg/common/errcode"
)

// Response 通用响应体
type Response struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"requestID"`
}

// SetResp 为指定的 gin.Context 设置成功响应数据（建议 200 <= statusCode < 300）
func SetResp(c *gin.Context, statusCode int, data any) {
	// 204 状态码特殊处理
	if statusCode == http.StatusNoContent {
		c.Status(statusCode)
		return
	}
	c.JSON(statusCode, Response{Code: errcode.NoErr, Data: data, RequestID: GetRequestID(c)})
}

// SetErrResp 为指定的 gin.Context 设置错误响应数据
func SetErrResp(c *gin.Context, statusCode, code int, message string) {
	SetErrRespWithData(c, statusCode, code, message, nil)
}

// SetErrRespWithData 设置错误响应，同时返回数据（如校验失败时返回提交的内容与字段错误）
func SetErrRespWithData(c *gin.Context, statusCode, code int, message string, data any) {
	c.JSON(statusCode, Response{Code: code, Message: message, Data: data, RequestID: GetRequestID(c)})
}

// AbortWithErrResp 设置错误响应并中止后续 Handler（中间件使用）
func AbortWithErrResp(c *gin.Context, statusCode, code int, message string) {
	SetErrResp(c, statusCode, code, message)
	c.Abort()
}
