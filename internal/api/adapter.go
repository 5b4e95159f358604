package api

import (
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
)

// ResponsesRequest is the OpenAI responses request body
type ResponsesRequest struct {
	Model  string           `json:"model"`
	Input  []models.Message `json:"input"`
	Stream bool             `json:"stream"`
}

// ChatRequest is the OpenAI chat completions request body
type ChatRequest struct {
	Model    string           `json:"model"`
	Messages []models.Message `json:"messages"`
	Stream   bool             `json:"stream"`
}

// AnthropicRequest is the Anthropic messages request body
type AnthropicRequest struct {
	Model     string           `json:"model"`
	System    string           `json:"system,omitempty"`
	Messages  []models.Message `json:"messages"`
	MaxTokens int              `json:"max_tokens"`
}

// ImageRequest is the OpenAI image generation request body
type ImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// ResponsesBody builds the responses request for a transcript
func ResponsesBody(t *conversation.Transcript, stream bool) ResponsesRequest {
	return ResponsesRequest{
		Model:  t.Model,
		Input:  copyMessages(t.Input),
		Stream: stream,
	}
}

// ChatBody builds the chat completions request for a transcript
func ChatBody(t *conversation.Transcript, stream bool) ChatRequest {
	return ChatRequest{
		Model:    t.Model,
		Messages: copyMessages(t.Input),
		Stream:   stream,
	}
}

// AnthropicBody builds the Anthropic request. The developer message moves to
// the top-level system field and is excluded from messages.
func AnthropicBody(t *conversation.Transcript, maxTokens int) AnthropicRequest {
	req := AnthropicRequest{
		Model:     t.Model,
		Messages:  make([]models.Message, 0, len(t.Input)),
		MaxTokens: maxTokens,
	}
	for _, msg := range t.Input {
		if msg.IsDeveloper() {
			if req.System == "" {
				req.System = msg.Content
			}
			continue
		}
		req.Messages = append(req.Messages, msg)
	}
	return req
}

// buildBody picks the request body for a shape
func buildBody(t *conversation.Transcript, shape models.Shape, maxTokens int) any {
	switch shape {
	case models.ShapeChat:
		return ChatBody(t, false)
	case models.ShapeAnthropic:
		return AnthropicBody(t, maxTokens)
	case models.ShapeDelta:
		return ResponsesBody(t, true)
	default:
		return ResponsesBody(t, false)
	}
}

func copyMessages(in []models.Message) []models.Message {
	out := make([]models.Message, len(in))
	copy(out, in)
	return out
}
