// Package dto 提供 HTTP 层数据传输对象
package dto

// GenerateRequest 博客生成请求
// tone/length 为自由文本，缺省值由应用层填充
type GenerateRequest struct {
	Topic  string `json:"topic" binding:"required"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

// GenerateResponse 博客生成响应
// topic 为剥离口语化前缀后的主题
type GenerateResponse struct {
	Content string `json:"content"`
	Topic   string `json:"topic"`
}

// StatusResponse 服务状态响应
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
