// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess       ErrorCode = "0"
	CodeUnknown       ErrorCode = "1000"
	CodeInvalidParam  ErrorCode = "1001"
	CodeInternalError ErrorCode = "1002"

	// 生成业务错误 (4xxx)
	CodeAPIKeyMissing    ErrorCode = "4001"
	CodeGenerationFailed ErrorCode = "4002"

	// 上游服务错误 (5xxx)
	CodeUpstreamError   ErrorCode = "5001"
	CodeUpstreamTimeout ErrorCode = "5002"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// ClientDetail 返回面向调用方的错误描述
// 优先使用 Detail，其次使用 Message
func (e *AppError) ClientDetail() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// NewWithStatus 创建携带指定 HTTP 状态码的应用错误
// 用于透传上游服务返回的状态码
func NewWithStatus(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrInvalidParam  = New(CodeInvalidParam, "invalid parameter")
	ErrInternalError = New(CodeInternalError, "internal server error")

	ErrAPIKeyMissing    = New(CodeAPIKeyMissing, "API key not configured on server")
	ErrGenerationFailed = New(CodeGenerationFailed, "blog generation failed")

	ErrUpstreamTimeout = New(CodeUpstreamTimeout, "Request timed out. Please try again.")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, err.Error())
}
