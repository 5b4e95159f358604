// Package api provides the HTTP client for the OpenAI and Anthropic chat APIs.
package api

// GJSON paths for extracting values from provider responses.
const (
	// Responses shape: the first "message" item in output carries the reply
	PathResponsesMessage = `output.#(type=="message")`
	PathResponsesText    = "content.0.text"

	// Chat completions shape
	PathChatText = "choices.0.message.content"

	// Anthropic messages shape
	PathAnthropicText = "content.0.text"

	// Streaming delta frame
	PathDelta = "delta"

	// Error envelopes. OpenAI and Anthropic both nest the message under error.
	PathErrorMessage = "error.message"

	// Anthropic model listing
	PathModelIDs = "data.#.id"

	// Image generation
	PathImageURLs = "data.#.url"
)
