package commands

import (
	"context"
	"io"
	"os"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/tui"
)

// ChatClient defines the methods required from the API client.
type ChatClient interface {
	Complete(ctx context.Context, t *conversation.Transcript, shape models.Shape) (string, bool, error)
	Stream(ctx context.Context, t *conversation.Transcript, w io.Writer) (string, error)
	Ask(ctx context.Context, model, developer, user string) (string, bool, error)
	ListModels(ctx context.Context) ([]string, error)
	GenerateImage(ctx context.Context, model, prompt string) ([]string, error)
}

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunInterview(cfg config.Config, models []string) (config.Config, bool, error)
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunInterview(cfg config.Config, models []string) (config.Config, bool, error) {
	return tui.RunInterview(cfg, models)
}

// Env holds everything a command handler touches.
// Handlers share one Env for the lifetime of the loop.
type Env struct {
	// Session is the shared conversation transcript.
	Session *conversation.Session

	// DevMessage is reinserted at the front of the transcript on every clear.
	DevMessage models.Message

	Config *config.Config
	Client ChatClient
	Store  *conversation.Store
	TUI    TUIInterface

	// Prompter reads answers to follow-up questions (names, confirmations).
	Prompter Prompter

	// OutputDir is the base directory for generated readmes and reports.
	// Empty means the working directory.
	OutputDir string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// RawArgs is the unsplit argument text of the command being executed.
	RawArgs string
}

// NewEnv creates an Env wired to the process standard streams.
func NewEnv(session *conversation.Session, dev models.Message, cfg *config.Config, client ChatClient) *Env {
	return &Env{
		Session:    session,
		DevMessage: dev,
		Config:     cfg,
		Client:     client,
		Store:      conversation.NewStore(conversation.DefaultDir),
		TUI:        &DefaultTUI{},
		Prompter:   NewReaderPrompter(os.Stdin, os.Stdout),
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
	}
}
