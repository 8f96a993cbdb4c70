package service

import (
	"errors"
	"fmt"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidBody     = errors.New("invalid body")
)

// ValidationError 表示请求字段校验失败，Message 可直接返回给客户端。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func requiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}
