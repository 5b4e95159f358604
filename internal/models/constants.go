// Package models contains data types and constants shared by the chat client.
package models

import "strings"

// Endpoints for the upstream provider APIs
const (
	EndpointOpenAIResponses = "https://api.openai.com/v1/responses"
	EndpointOpenAIChat      = "https://api.openai.com/v1/chat/completions"
	EndpointOpenAIImages    = "https://api.openai.com/v1/images/generations"
	EndpointAnthropic       = "https://api.anthropic.com/v1/messages"
	EndpointAnthropicModels = "https://api.anthropic.com/v1/models"
)

// AnthropicVersion is sent as the anthropic-version header on every Anthropic request
const AnthropicVersion = "2023-06-01"

// Provider identifies one upstream API family
type Provider int

const (
	ProviderOpenAI Provider = iota
	ProviderAnthropic
)

// String returns the provider name
func (p Provider) String() string {
	switch p {
	case ProviderOpenAI:
		return "openai"
	case ProviderAnthropic:
		return "anthropic"
	default:
		return "unknown"
	}
}

// Shape is the request/response schema used for a single exchange
type Shape int

const (
	// ShapeResponses is the OpenAI "responses" shape ({model, input, stream})
	ShapeResponses Shape = iota
	// ShapeChat is the OpenAI "chat completions" shape ({model, messages, stream})
	ShapeChat
	// ShapeAnthropic is the Anthropic "messages" shape ({model, system, messages, max_tokens})
	ShapeAnthropic
	// ShapeDelta is a streamed OpenAI "responses" exchange made of delta frames
	ShapeDelta
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case ShapeResponses:
		return "responses"
	case ShapeChat:
		return "chat"
	case ShapeAnthropic:
		return "anthropic"
	case ShapeDelta:
		return "delta"
	default:
		return "unknown"
	}
}

// Provider returns the provider that serves the shape
func (s Shape) Provider() Provider {
	if s == ShapeAnthropic {
		return ProviderAnthropic
	}
	return ProviderOpenAI
}

// Endpoint returns the URL a request of this shape is posted to
func (s Shape) Endpoint() string {
	switch s {
	case ShapeChat:
		return EndpointOpenAIChat
	case ShapeAnthropic:
		return EndpointAnthropic
	default:
		return EndpointOpenAIResponses
	}
}

// Streams reports whether the shape delivers the reply incrementally
func (s Shape) Streams() bool {
	return s == ShapeDelta
}

// Well-known model names
const (
	ModelGPT4o         = "gpt-4o"
	ModelGPT4oMini     = "gpt-4o-mini"
	ModelSearchPreview = "gpt-4o-search-preview"
	ModelO1            = "o1"
	ModelO3Mini        = "o3-mini"

	// DefaultModel is used when the config names no valid model
	DefaultModel = ModelGPT4oMini
)

// OpenAIModels returns the OpenAI models offered for selection
func OpenAIModels() []string {
	return []string{
		ModelGPT4o,
		ModelGPT4oMini,
		ModelSearchPreview,
		ModelO1,
		ModelO3Mini,
	}
}

// FallbackAnthropicModels is offered when the Anthropic model listing cannot be fetched
func FallbackAnthropicModels() []string {
	return []string{
		"claude-sonnet-4-20250514",
		"claude-3-7-sonnet-latest",
		"claude-3-5-haiku-latest",
	}
}

// ProviderFor returns the provider serving a model name
func ProviderFor(model string) Provider {
	if strings.Contains(strings.ToLower(model), "claude") {
		return ProviderAnthropic
	}
	return ProviderOpenAI
}

// ChatShape selects the shape for an interactive chat turn.
// Anthropic models are always buffered; the search preview model only speaks
// the chat completions API; everything else streams when stream is set.
func ChatShape(model string, stream bool) Shape {
	switch {
	case ProviderFor(model) == ProviderAnthropic:
		return ShapeAnthropic
	case strings.EqualFold(model, ModelSearchPreview):
		return ShapeChat
	case stream:
		return ShapeDelta
	default:
		return ShapeChat
	}
}

// OneShotShape selects the buffered shape for generated documents (readme, report)
func OneShotShape(model string) Shape {
	if ProviderFor(model) == ProviderAnthropic {
		return ShapeAnthropic
	}
	return ShapeResponses
}

// AllModelNames merges the enabled providers' model lists, OpenAI first
func AllModelNames(openAIEnabled, anthropicEnabled bool, anthropicModels []string) []string {
	var names []string
	if openAIEnabled {
		names = append(names, OpenAIModels()...)
	}
	if anthropicEnabled {
		names = append(names, anthropicModels...)
	}
	return names
}
