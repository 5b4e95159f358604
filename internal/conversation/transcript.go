// Package conversation holds the chat transcript and its shared, lock-guarded handle.
package conversation

import (
	"github.com/diogo/termchat/internal/models"
)

// Transcript is the ordered conversation state sent to the provider.
// Its JSON form is also the on-disk conversation format.
type Transcript struct {
	Model  string           `json:"model"`
	Input  []models.Message `json:"input"`
	Stream bool             `json:"stream"`
}

// New creates an empty transcript for the given model
func New(model string, stream bool) *Transcript {
	return &Transcript{
		Model:  model,
		Input:  []models.Message{},
		Stream: stream,
	}
}

// Push appends a message
func (t *Transcript) Push(msg models.Message) {
	t.Input = append(t.Input, msg)
}

// Clear removes every message. Callers reinsert the developer message.
func (t *Transcript) Clear() {
	t.Input = t.Input[:0]
}

// Reset clears the transcript and reinserts the developer message
func (t *Transcript) Reset(dev models.Message) {
	t.Clear()
	t.Push(dev)
}

// SetStream sets whether the next chat turn asks for incremental delivery
func (t *Transcript) SetStream(stream bool) {
	t.Stream = stream
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	return len(t.Input)
}

// Developer returns the developer message, if any
func (t *Transcript) Developer() (models.Message, bool) {
	for _, msg := range t.Input {
		if msg.IsDeveloper() {
			return msg, true
		}
	}
	return models.Message{}, false
}

// SetDeveloper rewrites the developer message in place, or inserts one at the
// front when the transcript has none.
func (t *Transcript) SetDeveloper(content string) {
	for i := range t.Input {
		if t.Input[i].IsDeveloper() {
			t.Input[i].Content = content
			return
		}
	}
	t.Input = append([]models.Message{models.NewMessage(models.RoleDeveloper, content)}, t.Input...)
}

// Turns returns every non-developer message in order
func (t *Transcript) Turns() []models.Message {
	turns := make([]models.Message, 0, len(t.Input))
	for _, msg := range t.Input {
		if !msg.IsDeveloper() {
			turns = append(turns, msg)
		}
	}
	return turns
}

// Last returns the most recent message, if any
func (t *Transcript) Last() (models.Message, bool) {
	if len(t.Input) == 0 {
		return models.Message{}, false
	}
	return t.Input[len(t.Input)-1], true
}

// Clone returns a deep copy
func (t *Transcript) Clone() *Transcript {
	input := make([]models.Message, len(t.Input))
	copy(input, t.Input)
	return &Transcript{
		Model:  t.Model,
		Input:  input,
		Stream: t.Stream,
	}
}
