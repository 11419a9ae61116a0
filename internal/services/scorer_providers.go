package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/logger"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ollama/ollama/api"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// callProvider dispatches to the appropriate provider-specific function based on Provider field
func (s *ScorerService) callProvider(ctx context.Context, cfg *models.ScorerConfig, prompt string) (string, error) {
	switch cfg.Provider {
	case "anthropic":
		return s.callAnthropic(ctx, cfg, prompt)
	case "ollama":
		return s.callOllama(ctx, cfg, prompt)
	case "gemini":
		return s.callGemini(ctx, cfg, prompt)
	case "azure":
		return s.callAzure(ctx, cfg, prompt)
	default:
		// openai and other OpenAI-compatible services
		return s.callOpenAI(ctx, cfg, prompt)
	}
}

// callOpenAI handles OpenAI and OpenAI-compatible APIs (including custom endpoints)
func (s *ScorerService) callOpenAI(ctx context.Context, cfg *models.ScorerConfig, prompt string) (string, error) {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	temperature := float32(0.2)
	if cfg.Temperature > 0 {
		temperature = float32(cfg.Temperature)
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	logger.Infof("[Scorer] OpenAI response length: %d chars", len(content))
	return content, nil
}

// callAnthropic handles Anthropic Claude API using the native SDK
func (s *ScorerService) callAnthropic(ctx context.Context, cfg *models.ScorerConfig, prompt string) (string, error) {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1024
	}

	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	// Extract text content from response
	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	logger.Infof("[Scorer] Anthropic response length: %d chars", len(content))
	return content, nil
}

// callOllama handles Ollama API using the native SDK
func (s *ScorerService) callOllama(ctx context.Context, cfg *models.ScorerConfig, prompt string) (string, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid Ollama base URL: %w", err)
	}
	client := api.NewClient(u, http.DefaultClient)

	model := cfg.Model
	if model == "" {
		model = "llama3"
	}

	stream := false
	var content strings.Builder
	err = client.Chat(ctx, &api.ChatRequest{
		Model: model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": cfg.Temperature,
		},
	}, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("Ollama API error: %w", err)
	}

	result := content.String()
	logger.Infof("[Scorer] Ollama response length: %d chars", len(result))
	return result, nil
}

// callGemini handles Google Gemini API using the native SDK
func (s *ScorerService) callGemini(ctx context.Context, cfg *models.ScorerConfig, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini client error: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	content := resp.Text()
	logger.Infof("[Scorer] Gemini response length: %d chars", len(content))
	return content, nil
}

// callAzure handles Azure OpenAI API using special configuration
func (s *ScorerService) callAzure(ctx context.Context, cfg *models.ScorerConfig, prompt string) (string, error) {
	// Azure requires BaseURL format: https://{resource-name}.openai.azure.com
	// Model field is used as deployment name
	clientConfig := openai.DefaultAzureConfig(cfg.APIKey, cfg.BaseURL)
	client := openai.NewClientWithConfig(clientConfig)

	temperature := float32(0.2)
	if cfg.Temperature > 0 {
		temperature = float32(cfg.Temperature)
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: cfg.Model, // In Azure, this is the deployment name
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("Azure OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from Azure OpenAI")
	}

	content := resp.Choices[0].Message.Content
	logger.Infof("[Scorer] Azure OpenAI response length: %d chars", len(content))
	return content, nil
}
