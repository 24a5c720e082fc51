package models

import (
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}
	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}
	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListChatModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	if err := lister.ListChatModels(); err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestIsChatModel(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{"gpt-4o-mini", true},
		{"gpt-3.5-turbo", true},
		{"o1-preview", true},
		{"o3-mini", true},
		{"text-embedding-3-small", false},
		{"tts-1-hd", false},
		{"whisper-1", false},
		{"dall-e-3", false},
		{"omni-moderation-latest", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := isChatModel(tt.id); got != tt.expected {
				t.Errorf("isChatModel(%q) = %v, want %v", tt.id, got, tt.expected)
			}
		})
	}
}
