package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available chat models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a model lister for the given API key and optional
// OpenAI-compatible base URL
func NewLister(apiKey, baseURL string) *Lister {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
	}
}

// ListChatModels prints the chat-capable models available to the API key
func (l *Lister) ListChatModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("API key not found. Set AI_MODEL_API_KEY or OPENAI_API_KEY, or pass --api-key")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	var chatModels []string
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	if len(chatModels) == 0 {
		fmt.Println("No chat models found for this API key")
		return nil
	}

	fmt.Println("Available translation models:")
	for _, model := range chatModels {
		fmt.Printf("  %s\n", model)
	}

	return nil
}

// isChatModel filters out embedding, audio and image models
func isChatModel(id string) bool {
	for _, skip := range []string{"embedding", "tts", "audio", "whisper", "dall-e", "image", "moderation"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.Contains(id, "gpt") || strings.Contains(id, "chat") || strings.Contains(id, "o1") || strings.Contains(id, "o3")
}
