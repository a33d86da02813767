package service

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 用户 / 文章不存在
	ErrNotFound = errors.New("not found")
	// ErrForbidden 无权操作（非作者修改文章，或非作者查看草稿）
	ErrForbidden = errors.New("forbidden")
	// ErrLikeConflict 点赞记录保存失败（如并发请求触发唯一约束）
	ErrLikeConflict = errors.New("failed to save like")
)

// FieldError 字段级校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors 校验失败，不会产生任何持久化副作用
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+" "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has 是否包含指定字段的错误
func (e ValidationErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// AsValidationErrors 从 err 中提取校验错误
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// 将 gorm 的记录不存在错误转换为 ErrNotFound
func wrapNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, msg)
	}
	return errors.Wrap(err, msg)
}
