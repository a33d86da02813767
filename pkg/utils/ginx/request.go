package ginx

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	// RequestIDHeaderKey ...
	RequestIDHeaderKey = "X-Request-ID"
	// AuthorizationHeaderKey ...
	AuthorizationHeaderKey = "Authorization"
)

// ErrNilRequestBody ...
var ErrNilRequestBody = errors.New("request Body is nil")

// ReadRequestBody will return the body in []byte, without change the origin body
func ReadRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrNilRequestBody
	}

	body, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

// GetBearerToken 从 Authorization 头中获取 Bearer Token，不存在时返回空字符串
func GetBearerToken(r *http.Request) string {
	header := r.Header.Get(AuthorizationHeaderKey)
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
