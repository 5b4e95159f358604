package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/termchat/internal/config"
	apierrors "github.com/diogo/termchat/internal/errors"
)

var testModels = []string{"gpt-4o", "gpt-4o-mini", "o1"}

func press(m ConfigModel, keys ...string) ConfigModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(ConfigModel)
	}
	return m
}

func TestNewConfigModel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Model = "o1"

	m := NewConfigModel(cfg, testModels)

	if m.view != viewMain || m.cursor != 0 {
		t.Errorf("view=%v cursor=%d", m.view, m.cursor)
	}
	if m.modelCursor != 2 {
		t.Errorf("modelCursor = %d, want 2", m.modelCursor)
	}
	if m.Init() != nil {
		t.Error("Init should return nil command")
	}
	if m.Saved() {
		t.Error("new model should not be saved")
	}
}

func TestConfigModel_SelectModel(t *testing.T) {
	m := NewConfigModel(config.DefaultConfig(), testModels)

	m = press(m, "enter") // open model list
	if m.view != viewModelSelect {
		t.Fatalf("view = %v, want model select", m.view)
	}
	m = press(m, "down", "enter")

	if m.view != viewMain {
		t.Errorf("view = %v, want main", m.view)
	}
	if m.Config().Model != "o1" {
		t.Errorf("Model = %s, want o1", m.Config().Model)
	}
}

func TestConfigModel_Toggles(t *testing.T) {
	m := NewConfigModel(config.DefaultConfig(), testModels)

	m = press(m, "down", "enter") // streaming
	m = press(m, "down", "enter") // preview
	m = press(m, "down", "enter") // boxes

	cfg := m.Config()
	if !cfg.EnableStreaming || !cfg.PreviewMarkdown || !cfg.MessageBoxes {
		t.Errorf("toggles not applied: %+v", cfg)
	}
	if cfg.CopyToClipboard {
		t.Error("clipboard should be untouched")
	}
}

func TestConfigModel_CursorWraps(t *testing.T) {
	m := NewConfigModel(config.DefaultConfig(), testModels)
	m = press(m, "up")
	if m.cursor != menuItemCount-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, menuItemCount-1)
	}
	m = press(m, "down")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestConfigModel_DevMessage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DevMessage = "old"
	m := NewConfigModel(cfg, testModels)

	for m.cursor != menuDevMessage {
		m = press(m, "down")
	}
	m = press(m, "enter")
	if m.view != viewDevMessage {
		t.Fatalf("view = %v", m.view)
	}

	m.editor.SetValue("be terse")
	m = press(m, "ctrl+s")
	if m.view != viewMain || m.Config().DevMessage != "be terse" {
		t.Errorf("view=%v dev=%q", m.view, m.Config().DevMessage)
	}

	// esc discards
	m = press(m, "enter")
	m.editor.SetValue("discarded")
	m = press(m, "esc")
	if m.Config().DevMessage != "be terse" {
		t.Errorf("dev = %q", m.Config().DevMessage)
	}
}

func TestConfigModel_SaveAndCancel(t *testing.T) {
	m := NewConfigModel(config.DefaultConfig(), testModels)
	for m.cursor != menuSave {
		m = press(m, "down")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(ConfigModel).Saved() {
		t.Error("Save and Exit should mark saved")
	}
	if cmd == nil {
		t.Error("Save and Exit should quit")
	}

	m = NewConfigModel(config.DefaultConfig(), testModels)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(ConfigModel).Saved() || cmd == nil {
		t.Error("esc on main view should quit without saving")
	}
}

func TestConfigModel_View(t *testing.T) {
	m := NewConfigModel(config.DefaultConfig(), testModels)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(ConfigModel)

	view := m.View()
	for _, want := range []string{"Configuration", "Model", "Streaming", "Save and Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, "enter")
	if !strings.Contains(m.View(), "gpt-4o-mini") {
		t.Error("model list should show models")
	}
}

func TestFormatError(t *testing.T) {
	if FormatError(nil, "x") != "" {
		t.Error("nil error should format empty")
	}

	err := apierrors.NewAPIErrorWithBody(429, "https://api.openai.com/v1/responses", "slow down", `{"error":"rate"}`)
	out := FormatError(err, "Chat failed")
	for _, want := range []string{"Chat failed", "429", "api.openai.com", "rate limited"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatError() missing %q: %s", want, out)
		}
	}

	out = FormatError(errors.New("plain"), "")
	if !strings.Contains(out, "plain") {
		t.Errorf("FormatError() = %s", out)
	}
}
