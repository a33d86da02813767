package service

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// 用户名只允许字母、数字、下划线与中划线
var userNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// 各校验规则对应的错误信息
var tagMessages = map[string]string{
	"notblank": "can't be blank",
	"required": "can't be blank",
	"oneof":    "is not included in the list",
	"max":      "is too long",
	"username": "is invalid",
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// 错误中的字段名使用 json tag，与响应体保持一致
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return userNameRegexp.MatchString(fl.Field().String())
		})
	})
	return validate
}

// 校验结构体，将 validator 的错误转换为 ValidationErrors
func validateStruct(obj any) error {
	err := getValidator().Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verrs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		verrs = append(verrs, FieldError{Field: fe.Field(), Message: msg})
	}
	return verrs
}
