package models

import (
	"testing"
)

func TestProviderFor(t *testing.T) {
	tests := []struct {
		model    string
		expected Provider
	}{
		{"gpt-4o", ProviderOpenAI},
		{"o3-mini", ProviderOpenAI},
		{"claude-3-5-haiku-latest", ProviderAnthropic},
		{"Claude-Sonnet", ProviderAnthropic},
		{"", ProviderOpenAI},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := ProviderFor(tt.model); got != tt.expected {
				t.Errorf("ProviderFor(%q) = %v, want %v", tt.model, got, tt.expected)
			}
		})
	}
}

func TestChatShape(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		stream   bool
		expected Shape
	}{
		{"streaming openai", "gpt-4o", true, ShapeDelta},
		{"buffered openai", "gpt-4o", false, ShapeChat},
		{"search preview never streams", "gpt-4o-search-preview", true, ShapeChat},
		{"search preview is case insensitive", "GPT-4o-Search-Preview", true, ShapeChat},
		{"anthropic never streams", "claude-3-7-sonnet-latest", true, ShapeAnthropic},
		{"anthropic buffered", "claude-3-7-sonnet-latest", false, ShapeAnthropic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChatShape(tt.model, tt.stream); got != tt.expected {
				t.Errorf("ChatShape(%q, %v) = %v, want %v", tt.model, tt.stream, got, tt.expected)
			}
		})
	}
}

func TestOneShotShape(t *testing.T) {
	if got := OneShotShape("o3-mini"); got != ShapeResponses {
		t.Errorf("OneShotShape(o3-mini) = %v, want responses", got)
	}
	if got := OneShotShape("claude-3-5-haiku-latest"); got != ShapeAnthropic {
		t.Errorf("OneShotShape(claude) = %v, want anthropic", got)
	}
}

func TestShapeEndpointAndProvider(t *testing.T) {
	tests := []struct {
		shape    Shape
		endpoint string
		provider Provider
		streams  bool
	}{
		{ShapeResponses, EndpointOpenAIResponses, ProviderOpenAI, false},
		{ShapeDelta, EndpointOpenAIResponses, ProviderOpenAI, true},
		{ShapeChat, EndpointOpenAIChat, ProviderOpenAI, false},
		{ShapeAnthropic, EndpointAnthropic, ProviderAnthropic, false},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			if got := tt.shape.Endpoint(); got != tt.endpoint {
				t.Errorf("Endpoint() = %s, want %s", got, tt.endpoint)
			}
			if got := tt.shape.Provider(); got != tt.provider {
				t.Errorf("Provider() = %v, want %v", got, tt.provider)
			}
			if got := tt.shape.Streams(); got != tt.streams {
				t.Errorf("Streams() = %v, want %v", got, tt.streams)
			}
		})
	}
}

func TestAllModelNames(t *testing.T) {
	anthropic := []string{"claude-a", "claude-b"}

	both := AllModelNames(true, true, anthropic)
	if len(both) != len(OpenAIModels())+2 {
		t.Fatalf("expected %d models, got %d", len(OpenAIModels())+2, len(both))
	}
	if both[0] != ModelGPT4o {
		t.Errorf("expected OpenAI models first, got %s", both[0])
	}
	if both[len(both)-1] != "claude-b" {
		t.Errorf("expected anthropic models last, got %s", both[len(both)-1])
	}

	if got := AllModelNames(false, true, anthropic); len(got) != 2 {
		t.Errorf("anthropic only: got %v", got)
	}
	if got := AllModelNames(true, false, anthropic); len(got) != len(OpenAIModels()) {
		t.Errorf("openai only: got %v", got)
	}
	if got := AllModelNames(false, false, anthropic); len(got) != 0 {
		t.Errorf("none enabled: got %v", got)
	}
}

func TestMessage_IsDeveloper(t *testing.T) {
	if !NewMessage(RoleDeveloper, "x").IsDeveloper() {
		t.Error("developer message should report IsDeveloper")
	}
	if !NewMessage(RoleSystem, "x").IsDeveloper() {
		t.Error("system message should report IsDeveloper")
	}
	if NewMessage(RoleUser, "x").IsDeveloper() {
		t.Error("user message should not report IsDeveloper")
	}
}
