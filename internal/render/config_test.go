package render

import (
	"testing"

	"github.com/diogo/termchat/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")

	md := config.DefaultMarkdownConfig()
	md.Style = ThemeLight
	md.EnableEmoji = false

	opts := OptionsFromConfig(md)
	if opts.Style != ThemeLight || opts.EnableEmoji {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
	if opts.Width != 80 {
		t.Errorf("Width = %d, want 80", opts.Width)
	}
}

func TestOptionsFromConfig_EmptyStyle(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")

	opts := OptionsFromConfig(config.MarkdownConfig{})
	if opts.Style != ThemeDark {
		t.Errorf("Style = %s, want %s", opts.Style, ThemeDark)
	}
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", ThemeNoTTY)

	opts := OptionsFromConfig(config.DefaultMarkdownConfig())
	if opts.Style != ThemeNoTTY {
		t.Errorf("Style = %s, want %s from env", opts.Style, ThemeNoTTY)
	}
}
