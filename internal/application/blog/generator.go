package blog

import (
	"context"
	"strings"
	"time"

	"blogforge-api/internal/application/blog/prompt"
	"blogforge-api/internal/config"
	"blogforge-api/pkg/errors"
	"blogforge-api/pkg/logger"
	"blogforge-api/pkg/metrics"
	"blogforge-api/pkg/tracer"
)

// 请求级默认值
const (
	DefaultTone   = "informative and friendly"
	DefaultLength = "1000-1500"
)

// CompletionClient 对话补全客户端
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Params 生成请求参数
type Params struct {
	Topic  string
	Tone   string
	Length string
}

// Result 生成结果
type Result struct {
	Content string
	Topic   string
}

// Generator 博客生成器
// 单次请求 -> 规范化 -> 渲染 Prompt -> 一次上游调用 -> 结果
type Generator struct {
	cfg     *config.Config
	prompts *prompt.Registry
	llm     CompletionClient
}

// NewGenerator 创建博客生成器
func NewGenerator(cfg *config.Config, llm CompletionClient) *Generator {
	return &Generator{
		cfg:     cfg,
		prompts: prompt.NewRegistry(),
		llm:     llm,
	}
}

// Generate 生成一篇博客
// API Key 未配置时立即失败，不发起上游调用
func (g *Generator) Generate(ctx context.Context, params Params) (*Result, error) {
	ctx, span := tracer.Start(ctx, "blog.generate")
	defer span.End()

	if strings.TrimSpace(g.cfg.LLM.Groq.APIKey) == "" {
		return nil, errors.ErrAPIKeyMissing
	}

	topic := NormalizeTopic(params.Topic)
	if topic == "" {
		return nil, errors.ErrInvalidParam.WithDetail("topic must not be empty")
	}

	tone := strings.TrimSpace(params.Tone)
	if tone == "" {
		tone = DefaultTone
	}
	length := strings.TrimSpace(params.Length)
	if length == "" {
		length = DefaultLength
	}

	system, user, err := g.prompts.Render(prompt.PromptBlogPostV1, map[string]string{
		"topic":  topic,
		"tone":   tone,
		"length": length,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to render prompt")
	}

	model := g.cfg.LLM.Groq.Model
	start := time.Now()
	content, err := g.llm.Complete(ctx, system, user)
	elapsed := time.Since(start)
	metrics.LLMCallDuration.WithLabelValues(model).Observe(elapsed.Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(model, "error").Inc()
		metrics.GenerationTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "blog generation failed", err,
			"topic", topic,
			"model", model,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return nil, err
	}

	metrics.LLMCallTotal.WithLabelValues(model, "success").Inc()
	metrics.GenerationTotal.WithLabelValues("success").Inc()
	metrics.GenerationDuration.Observe(elapsed.Seconds())
	metrics.GeneratedContentLength.Observe(float64(len(content)))

	logger.Info(ctx, "blog generated",
		"topic", topic,
		"model", model,
		"content_length", len(content),
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return &Result{
		Content: content,
		Topic:   topic,
	}, nil
}
