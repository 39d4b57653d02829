// Package blog 提供博客生成应用逻辑
package blog

import (
	"strings"
)

// fillerPrefixes 用户输入中常见的口语化前缀，按顺序匹配
// 只剥离第一个命中的前缀，命中后不再继续匹配
var fillerPrefixes = []string{
	"write a blog about",
	"write blog about",
	"blog about",
	"write about",
	"blog on",
	"create a blog about",
}

// NormalizeTopic 规范化主题：去除首尾空白，并剥离口语化前缀
// 前缀匹配不区分大小写，剥离后同时去掉紧随的空白
func NormalizeTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	lower := strings.ToLower(topic)
	for _, p := range fillerPrefixes {
		if strings.HasPrefix(lower, p) {
			topic = strings.TrimSpace(topic[len(p):])
			break
		}
	}
	return topic
}
