// Package prompt 提供嵌入式 Prompt 模板管理
package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates/*.txt
var templatesFS embed.FS

// PromptID 模板标识
type PromptID string

const (
	// PromptBlogPostV1 SEO 博客文章生成模板
	PromptBlogPostV1 PromptID = "blog_post_v1"
)

// Template 一组 system/user 模板
// 占位符形如 {topic}，渲染时整体替换
type Template struct {
	System string
	User   string
}

// Registry 模板注册表，按需加载并缓存
type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]*Template
}

// NewRegistry 创建模板注册表
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]*Template),
	}
}

// Render 渲染指定模板，返回 system/user 两条消息文本
func (r *Registry) Render(id PromptID, vars map[string]string) (string, string, error) {
	if r == nil {
		return "", "", fmt.Errorf("prompt registry is nil")
	}

	tpl, err := r.template(id)
	if err != nil {
		return "", "", err
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	replacer := strings.NewReplacer(pairs...)

	return replacer.Replace(tpl.System), replacer.Replace(tpl.User), nil
}

func (r *Registry) template(id PromptID) (*Template, error) {
	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	systemPath, userPath, err := resolvePromptFiles(id)
	if err != nil {
		return nil, err
	}
	system, err := readEmbeddedText(systemPath)
	if err != nil {
		return nil, err
	}
	user, err := readEmbeddedText(userPath)
	if err != nil {
		return nil, err
	}

	tpl := &Template{System: system, User: user}
	r.cache[id] = tpl
	return tpl, nil
}

func resolvePromptFiles(id PromptID) (systemFile string, userFile string, err error) {
	switch id {
	case PromptBlogPostV1:
		return "templates/blog_post_v1.system.txt", "templates/blog_post_v1.user.txt", nil
	default:
		return "", "", fmt.Errorf("unknown prompt id: %s", id)
	}
}

func readEmbeddedText(path string) (string, error) {
	data, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
