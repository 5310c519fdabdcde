// Package deepseek implements the outbound chat-completion call used for
// itinerary generation.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain/repository"
	"go.uber.org/zap"
)

const systemPrompt = "你是一个专业的旅游规划顾问，擅长生成详细、信息丰富的旅游规划。"

const userPromptFormat = `请为我生成一份详细的%s%s旅游规划，特别关注%s。
规划内容需要包括：
1. 行程概览（最佳旅游季节、交通建议等）
2. 三天的详细行程安排（上午、中午、下午、晚上），包括：
   - 推荐景点（包括地址、开放时间、门票信息）
   - 餐饮推荐（当地特色餐厅和招牌菜品）
   - 必做活动和体验
3. 住宿推荐（不同价位的选择）
4. 实用信息（紧急电话、天气提示、当地习俗等）
5. 额外建议和提示

请以Markdown格式输出，使用标题、列表和强调等格式，让规划清晰易读。`

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type client struct {
	httpClient  *http.Client
	endpoint    string
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

// NewClient creates a chat-completion client for the configured endpoint.
func NewClient(cfg *config.LLMConfig, logger *zap.Logger) repository.GeneratorRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

// GeneratePlan issues one chat-completion request and returns the generated
// Markdown document. Any transport failure, non-2xx status or unexpected
// response shape is an error; the caller decides on the fallback.
func (c *client) GeneratePlan(ctx context.Context, city, category, subcategory, credential string) (string, error) {
	if credential == "" {
		return "", fmt.Errorf("credential is empty")
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptFormat, city, category, subcategory)},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug("Calling chat-completion API",
		zap.String("endpoint", c.endpoint),
		zap.String("model", c.model),
		zap.String("city", city),
		zap.String("category", category),
		zap.String("subcategory", subcategory))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Chat-completion API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", fmt.Errorf("chat-completion API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("chat-completion API returned no choices")
	}

	content := chatResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("chat-completion API returned empty content")
	}

	c.logger.Debug("Chat-completion API call successful",
		zap.Int("content_length", len(content)))

	return content, nil
}
