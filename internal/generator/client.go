package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// Системная роль модели при генерации плана питания.
const systemPrompt = "You are a professional nutritionist and meal planner with expertise in Ayurvedic principles."

// Client вызывает внешний сервис генерации текста (chat completions API).
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient создаёт клиент внешнего генеративного сервиса.
// Таймаут ограничивает весь запрос: генерация — единственная
// долгая операция в системе и не должна висеть бесконечно.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// GenerateMealPlan строит промпт из предпочтений, вызывает модель
// и разбирает ответ в структуру недельного плана.
func (c *Client) GenerateMealPlan(ctx context.Context, prefs models.Preferences) (*models.MealPlan, error) {
	const op = "generator.GenerateMealPlan"

	content, err := c.complete(ctx, BuildPrompt(prefs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	plan, err := ParsePlan(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plan, nil
}

// complete отправляет один запрос chat completions и возвращает текст ответа.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	const op = "generator.complete"

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err = json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%s: response contains no choices", op)
	}
	return chatResp.Choices[0].Message.Content, nil
}
