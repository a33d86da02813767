package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/TencentBlueKing/gopkg/conv"
	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/logging"
	"github.com/narasux/goarticle/pkg/utils/ginx"
)

// 请求 / 响应体记录的最大长度
const maxLoggedBodyLength = 1024

// 探活 & 指标采集请求量大且无业务意义，不记录访问日志
var skippedPaths = []string{"/healthz", "/metrics"}

// 记录响应体的 Writer（仅出错时写入日志）
type respRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write ...
func (w respRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func clientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		if ip := c.GetHeader(envs.RealClientIPHeaderKey); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

// 以 Handler 手动设置的错误为主，否则使用 c.Errors
func requestError(c *gin.Context) (any, bool) {
	if errVal, ok := ginx.GetError(c); ok {
		return errVal, true
	}
	if len(c.Errors) > 0 {
		return c.Errors.String(), true
	}
	return nil, false
}

// 表单类请求才记录请求体，feed 等 GET 请求没有请求体
func readBody(c *gin.Context) string {
	if c.Request.Method == http.MethodGet || strings.HasPrefix(c.ContentType(), "multipart/") {
		return ""
	}
	body, err := ginx.ReadRequestBody(c.Request)
	if err != nil {
		return ""
	}
	return stringx.Truncate(conv.BytesToString(body), maxLoggedBodyLength)
}

// Logger 访问日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if lo.Contains(skippedPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		reqBody := readBody(c)
		recorder := &respRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"route":     c.FullPath(),
			"params":    stringx.Truncate(c.Request.URL.RawQuery, maxLoggedBodyLength),
			"reqBody":   reqBody,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).Milliseconds(),
			"requestID": ginx.GetRequestID(c),
			"clientID":  ginx.GetClientID(c),
			"userID":    ginx.GetCurrentUserID(c),
			"sessionID": ginx.GetSessionID(c),
			"clientIP":  clientIP(c),
		}

		logger := logging.GetAccessLogger()
		errVal, hasErr := requestError(c)
		if !hasErr {
			logger.WithFields(fields).Info("-")
			return
		}
		fields["error"] = errVal
		fields["respBody"] = stringx.Truncate(recorder.body.String(), maxLoggedBodyLength)
		logger.WithFields(fields).Error("-")
	}
}
