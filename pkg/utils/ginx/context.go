package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/goarticle/pkg/model"
)

const (
	// RequestIDKey ...
	RequestIDKey = "requestID"
	// ClientIDKey ...
	ClientIDKey = "clientID"
	// SessionIDKey ...
	SessionIDKey = "sessionID"
	// CurrentUserKey ...
	CurrentUserKey = "currentUser"
	// ErrorKey ...
	ErrorKey = "error"
)

// GetRequestID ...
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID ...
func SetRequestID(c *gin.Context, requestID string) {
	c.Set(RequestIDKey, requestID)
}

// GetClientID 当前用户名，匿名访问时为空
func GetClientID(c *gin.Context) string {
	return c.GetString(ClientIDKey)
}

// SetClientID ...
func SetClientID(c *gin.Context, clientID string) {
	c.Set(ClientIDKey, clientID)
}

// GetSessionID ...
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// SetSessionID ...
func SetSessionID(c *gin.Context, sessionID string) {
	c.Set(SessionIDKey, sessionID)
}

// GetCurrentUser 获取当前登录用户，未登录时返回 nil
func GetCurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(CurrentUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// GetCurrentUserID 获取当前登录用户 ID，未登录时返回 0
func GetCurrentUserID(c *gin.Context) uint64 {
	if user := GetCurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// SetCurrentUser ...
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(CurrentUserKey, user)
	SetClientID(c, user.Name)
}

// GetError ...
func GetError(c *gin.Context) (any, bool) {
	return c.Get(ErrorKey)
}

// SetError ...
func SetError(c *gin.Context, err error) {
	c.Set(ErrorKey, err)
}
