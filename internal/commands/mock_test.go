package commands

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
)

type fakeReply struct {
	text string
	ok   bool
	err  error
}

type fakeCall struct {
	method     string
	shape      models.Shape
	transcript *conversation.Transcript
	model      string
	developer  string
	user       string
}

// fakeClient implements ChatClient with scripted replies
type fakeClient struct {
	mu sync.Mutex

	replies      []fakeReply
	streamChunks []string
	streamErr    error
	images       []string
	imageErr     error
	modelList    []string

	calls []fakeCall
}

var _ ChatClient = (*fakeClient)(nil)

func (f *fakeClient) next() fakeReply {
	if len(f.replies) == 0 {
		return fakeReply{}
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r
}

func (f *fakeClient) Complete(_ context.Context, t *conversation.Transcript, shape models.Shape) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fakeCall{method: "complete", shape: shape, transcript: t.Clone(), model: t.Model})
	r := f.next()
	return r.text, r.ok, r.err
}

func (f *fakeClient) Stream(_ context.Context, t *conversation.Transcript, w io.Writer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fakeCall{method: "stream", shape: models.ShapeDelta, transcript: t.Clone(), model: t.Model})
	var sb strings.Builder
	for _, chunk := range f.streamChunks {
		io.WriteString(w, chunk)
		sb.WriteString(chunk)
	}
	return sb.String(), f.streamErr
}

func (f *fakeClient) Ask(_ context.Context, model, developer, user string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fakeCall{method: "ask", shape: models.OneShotShape(model), model: model, developer: developer, user: user})
	r := f.next()
	return r.text, r.ok, r.err
}

func (f *fakeClient) ListModels(context.Context) ([]string, error) {
	return f.modelList, nil
}

func (f *fakeClient) GenerateImage(_ context.Context, model, prompt string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fakeCall{method: "image", model: model, user: prompt})
	return f.images, f.imageErr
}

func (f *fakeClient) callsOf(method string) []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []fakeCall
	for _, c := range f.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}

// scriptedPrompter answers prompts from a fixed list, then returns io.EOF
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return strings.TrimSpace(a), nil
}

type fakeTUI struct {
	result config.Config
	ok     bool
	err    error

	gotModels []string
}

func (f *fakeTUI) RunInterview(cfg config.Config, models []string) (config.Config, bool, error) {
	f.gotModels = models
	if !f.ok {
		return cfg, false, f.err
	}
	return f.result, true, f.err
}

type testEnv struct {
	*Env
	client   *fakeClient
	prompter *scriptedPrompter
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

// newTestEnv builds an Env on temp directories with a fresh transcript
// holding only the developer message.
func newTestEnv(t *testing.T, answers ...string) *testEnv {
	t.Helper()

	t.Setenv(config.ConfigDirEnv, t.TempDir())

	cfg := config.DefaultConfig()
	cfg.AllModels = []string{models.ModelGPT4o, models.ModelGPT4oMini, "claude-3-5-haiku-latest"}

	dev := models.NewMessage(models.RoleDeveloper, "be brief")
	transcript := conversation.New(models.ModelGPT4o, false)
	transcript.Push(dev)

	client := &fakeClient{}
	prompter := &scriptedPrompter{answers: answers}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	env := &Env{
		Session:    conversation.NewSession(transcript),
		DevMessage: dev,
		Config:     &cfg,
		Client:     client,
		Store:      conversation.NewStore(t.TempDir()),
		TUI:        &fakeTUI{},
		Prompter:   prompter,
		OutputDir:  t.TempDir(),
		In:         strings.NewReader(""),
		Out:        out,
		Err:        errOut,
	}

	return &testEnv{Env: env, client: client, prompter: prompter, out: out, errOut: errOut}
}

func (e *testEnv) messages() []models.Message {
	return e.Session.Snapshot().Input
}
