// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogforge-api/internal/config"
	"blogforge-api/internal/interfaces/http/dto"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		cfg: cfg,
	}
}

// Root 服务状态接口
// @Summary 服务状态
// @Tags System
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{
		Status: "BlogForge API is running",
	})
}

// Health 健康检查接口
// 不依赖 API Key 是否配置，始终返回 ok
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Model:  h.cfg.LLM.Groq.Model,
	})
}
