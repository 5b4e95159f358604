package conversation

import (
	"sync"

	"github.com/diogo/termchat/internal/models"
)

// Session is the shared handle to the single transcript.
// The dispatch loop and every command handler go through it; the lock is only
// held while state is read or mutated, never across a network call.
type Session struct {
	mu         sync.Mutex
	transcript *Transcript
}

// NewSession wraps a transcript
func NewSession(t *Transcript) *Session {
	if t == nil {
		t = New(models.DefaultModel, false)
	}
	return &Session{transcript: t}
}

// Update runs fn with exclusive access to the transcript
func (s *Session) Update(fn func(t *Transcript) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.transcript)
}

// View runs fn with exclusive access for reading
func (s *Session) View(fn func(t *Transcript)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.transcript)
}

// Snapshot returns a deep copy safe to use without the lock
func (s *Session) Snapshot() *Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Clone()
}

// Push appends a message
func (s *Session) Push(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.Push(msg)
}

// Reset clears the transcript and reinserts the developer message
func (s *Session) Reset(dev models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.Reset(dev)
}

// Replace swaps the whole transcript in a single locked step
func (s *Session) Replace(t *Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = t
}

// Model returns the active model
func (s *Session) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Model
}

// SetModel changes the active model
func (s *Session) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.Model = model
}

// Stream returns the stream flag
func (s *Session) Stream() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Stream
}

// SetStream sets the stream flag
func (s *Session) SetStream(stream bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.SetStream(stream)
}
