// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"github.com/gin-gonic/gin"

	"blogforge-api/pkg/errors"
)

// ErrorResponse 错误响应结构
// 对外契约固定为 {"detail": <message>}
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, detail string) {
	c.JSON(httpCode, ErrorResponse{
		Detail: detail,
	})
}

// ErrorFromApp 将 AppError 转换为错误响应
// 状态码取自 AppError（上游透传场景下即上游状态码）
func ErrorFromApp(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = 500
	}
	Error(c, status, appErr.ClientDetail())
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, detail string) {
	Error(c, 400, detail)
}
