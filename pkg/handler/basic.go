package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/goarticle/pkg/common/errcode"
	"github.com/narasux/goarticle/pkg/service"
	"github.com/narasux/goarticle/pkg/utils/ginx"
)

// Get404 ...
func Get404(c *gin.Context) {
	ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "not found")
}

// Healthz 健康检查
func Healthz(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, gin.H{"status": "ok"})
}

// 将 service 层的错误转换为响应
func setErrResp(c *gin.Context, err error) {
	ginx.SetError(c, err)

	if verrs, ok := service.AsValidationErrors(err); ok {
		ginx.SetErrRespWithData(c, http.StatusBadRequest, errcode.InvalidParams, verrs.Error(), gin.H{"errors": verrs})
		return
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		ginx.SetErrResp(c, http.StatusForbidden, errcode.Forbidden, err.Error())
	case errors.Is(err, service.ErrUnknownLikeAction):
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, err.Error())
	default:
		ginx.SetErrResp(c, http.StatusInternalServerError, errcode.Unknown, err.Error())
	}
}
