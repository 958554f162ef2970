package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// 摘要服务默认参数
const (
	DefaultSummaryBaseURL = "https://api.deepseek.com"
	DefaultSummaryModel   = "deepseek-chat"

	// SummaryUnavailable 摘要服务调用失败时的占位文本
	SummaryUnavailable = "(AI summary unavailable)"

	summarySystemPrompt = "You are an AI that generates short, clear summaries."
	summaryUserPrefix   = "Summarize this content:\n"
)

var errNoChoices = errors.New("摘要服务未返回任何结果")

// Summarizer 文本摘要接口，实现不得返回错误
type Summarizer interface {
	GenerateSummary(ctx context.Context, text string) string
}

// SummaryClientConfig 摘要客户端配置
type SummaryClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// SummaryClient 基于 OpenAI 兼容 chat/completions 接口的摘要客户端
type SummaryClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewSummaryClient 创建摘要客户端，进程启动时创建一次并注入到处理器
func NewSummaryClient(cfg SummaryClientConfig, logger *zap.Logger) *SummaryClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultSummaryBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultSummaryModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = baseURL

	return &SummaryClient{
		client: openai.NewClientWithConfig(oc),
		model:  model,
		logger: logger,
	}
}

// GenerateSummary 生成摘要；任何失败都记录日志并返回 SummaryUnavailable
func (s *SummaryClient) GenerateSummary(ctx context.Context, text string) string {
	summary, err := s.complete(ctx, text)
	if err != nil {
		s.logger.Error("摘要服务调用失败",
			zap.String("model", s.model),
			zap.Error(err))
		return SummaryUnavailable
	}
	return summary
}

func (s *SummaryClient) complete(ctx context.Context, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: summarySystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: summaryUserPrefix + text,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
