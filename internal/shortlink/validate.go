package shortlink

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinShortCodeLength = 3
	MaxShortCodeLength = 20
)

var shortCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// 与固定路由同名的短码会被路由遮蔽
var reservedShortCodes = map[string]struct{}{
	"api":     {},
	"auth":    {},
	"health":  {},
	"swagger": {},
}

// linkInput 创建与编辑共用的校验规则，字段顺序即报错优先级
type linkInput struct {
	URL       string `validate:"required,url"`
	ShortCode string `validate:"required,min=3,max=20,shortcode"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("shortcode", func(fl validator.FieldLevel) bool {
		return isShortCodeShape(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func isShortCodeShape(code string) bool {
	if !shortCodePattern.MatchString(code) {
		return false
	}
	_, reserved := reservedShortCodes[strings.ToLower(code)]
	return !reserved
}

// ValidShortCode 判断短码是否满足长度与字符集约束
func ValidShortCode(code string) bool {
	return len(code) >= MinShortCodeLength && len(code) <= MaxShortCodeLength && isShortCodeShape(code)
}

// validateLink 返回第一个违反的规则
func validateLink(in linkInput) *Error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return internal(err)
	}
	switch verrs[0].StructField() {
	case "URL":
		return &Error{Kind: KindInvalidURL, Field: "url", Message: msgInvalidURL}
	default:
		return &Error{Kind: KindInvalidShortCode, Field: "shortCode", Message: msgInvalidShortCode}
	}
}

// ParseID 解析路径中的链接 ID，无效时返回 0
func ParseID(raw string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, strconv.IntSize)
	if err != nil {
		return 0
	}
	return uint(id)
}
