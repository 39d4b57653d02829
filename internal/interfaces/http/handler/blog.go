// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogforge-api/internal/application/blog"
	"blogforge-api/internal/interfaces/http/dto"
)

// BlogHandler 博客生成处理器
type BlogHandler struct {
	generator *blog.Generator
}

// NewBlogHandler 创建博客生成处理器
func NewBlogHandler(generator *blog.Generator) *BlogHandler {
	return &BlogHandler{
		generator: generator,
	}
}

// Generate 生成博客
// @Summary 生成博客
// @Description 根据主题生成一篇 SEO 结构化博客
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body dto.GenerateRequest true "生成请求"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /generate [post]
func (h *BlogHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), blog.Params{
		Topic:  req.Topic,
		Tone:   req.Tone,
		Length: req.Length,
	})
	if err != nil {
		dto.ErrorFromApp(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Content: result.Content,
		Topic:   result.Topic,
	})
}

// GeneratePreflight 处理 /generate 的 CORS 预检
// 浏览器预检（带 Origin）由 CORS 中间件拦截，这里覆盖直连调用
func (h *BlogHandler) GeneratePreflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.JSON(http.StatusOK, gin.H{})
}
