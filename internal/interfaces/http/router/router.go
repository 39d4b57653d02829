// Package router 提供 HTTP 路由配置
package router

import (
	"blogforge-api/internal/application/blog"
	"blogforge-api/internal/config"
	"blogforge-api/internal/infrastructure/groq"
	"blogforge-api/internal/interfaces/http/handler"
	"blogforge-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// New 创建新的路由器
func New(cfg *config.Config) *Router {
	// 设置 Gin 模式
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine: engine,
		cfg:    cfg,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 组装生成链路：Groq 客户端 -> 生成器 -> 处理器
	llmClient := groq.NewClient(&r.cfg.LLM.Groq)
	generator := blog.NewGenerator(r.cfg, llmClient)

	healthHandler := handler.NewHealthHandler(r.cfg)
	blogHandler := handler.NewBlogHandler(generator)

	// 系统端点
	r.engine.GET("/", healthHandler.Root)
	r.engine.GET("/health", healthHandler.Health)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 生成端点
	r.engine.OPTIONS("/generate", blogHandler.GeneratePreflight)
	r.engine.POST("/generate", blogHandler.Generate)
}
