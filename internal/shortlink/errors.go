package shortlink

import (
	"errors"
)

// Kind 失败类型
type Kind string

const (
	KindUnauthorized       Kind = "Unauthorized"
	KindInvalidInput       Kind = "InvalidInput"
	KindInvalidURL         Kind = "InvalidUrl"
	KindInvalidShortCode   Kind = "InvalidShortCode"
	KindNotFoundOrNotOwned Kind = "NotFoundOrNotOwned"
	KindShortCodeTaken     Kind = "ShortCodeTaken"
	KindInternal           Kind = "Internal"
)

const (
	msgUnauthorized       = "Unauthorized"
	msgInvalidURL         = "Please enter a valid URL"
	msgInvalidShortCode   = "Short code must be 3-20 characters and contain only letters, numbers, hyphens, and underscores"
	msgInvalidID          = "Invalid link ID"
	msgNotFoundOrNotOwned = "Link not found or you don't have permission to modify it"
	msgShortCodeTaken     = "This short code is already taken. Please choose a different one."
)

// Error Service 返回的唯一错误类型
// Field 指向出错的表单字段，通用错误时为空
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf 返回错误类型，非 *Error 的错误视为 Internal
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: msgUnauthorized}
}

func invalidID() *Error {
	return &Error{Kind: KindInvalidInput, Field: "id", Message: msgInvalidID}
}

func notFoundOrNotOwned() *Error {
	return &Error{Kind: KindNotFoundOrNotOwned, Message: msgNotFoundOrNotOwned}
}

func shortCodeTaken(err error) *Error {
	return &Error{Kind: KindShortCodeTaken, Field: "shortCode", Message: msgShortCodeTaken, Err: err}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
