package handler

import (
	"errors"
	"net/http"

	"shortlink-manager/internal/shortlink"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 变更与列表接口的成功响应
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
}

// FailureResponse 失败响应，Field 指向出错的表单字段
type FailureResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"This short code is already taken. Please choose a different one."`
	Field   string `json:"field,omitempty" example:"shortCode"`
}

// ErrorResponse 非信封接口的错误响应
type ErrorResponse struct {
	Error string `json:"error" example:"Link not found"`
}

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

func respondFailure(c *gin.Context, err error) {
	var e *shortlink.Error
	if !errors.As(err, &e) {
		e = &shortlink.Error{Kind: shortlink.KindInternal, Message: err.Error()}
	}
	c.JSON(statusFor(e.Kind), FailureResponse{Success: false, Error: e.Message, Field: e.Field})
}

func statusFor(kind shortlink.Kind) int {
	switch kind {
	case shortlink.KindUnauthorized:
		return http.StatusUnauthorized
	case shortlink.KindInvalidInput, shortlink.KindInvalidURL, shortlink.KindInvalidShortCode:
		return http.StatusBadRequest
	case shortlink.KindNotFoundOrNotOwned:
		return http.StatusNotFound
	case shortlink.KindShortCodeTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
