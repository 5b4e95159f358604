package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestBox_SingleLineAssistant(t *testing.T) {
	out := plain(Box("hi there", SpeakerAssistant, 120))
	lines := strings.Split(out, "\n")

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "┌Assistant") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("top = %q", lines[0])
	}
	if !strings.Contains(lines[1], "hi there") {
		t.Errorf("body = %q", lines[1])
	}
	w := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if runewidth.StringWidth(l) != w {
			t.Errorf("line %d width %d, want %d: %q", i, runewidth.StringWidth(l), w, l)
		}
	}
}

func TestBox_UserRightAligned(t *testing.T) {
	out := plain(Box("ok", SpeakerUser, 60))
	lines := strings.Split(out, "\n")

	if !strings.HasPrefix(lines[0], " ") {
		t.Errorf("user box should be indented: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "User┐") {
		t.Errorf("top = %q", lines[0])
	}
	// right edge lines up with the chat column
	if got := runewidth.StringWidth(lines[0]); got != 60 {
		t.Errorf("top width = %d, want 60", got)
	}
}

func TestBox_WrapsLongText(t *testing.T) {
	text := strings.Repeat("word ", 60)
	out := plain(Box(text, SpeakerAssistant, 80))
	lines := strings.Split(out, "\n")

	if len(lines) < 5 {
		t.Errorf("long text should wrap, got %d lines", len(lines))
	}
	maxWidth := 80 * messageWidthPercent / 100
	for _, l := range lines {
		if runewidth.StringWidth(l) > maxWidth {
			t.Errorf("line exceeds %d cells: %q", maxWidth, l)
		}
	}
}

func TestWrapLines_LongWord(t *testing.T) {
	got := wrapLines([]string{strings.Repeat("x", 25)}, 10)
	if len(got) != 3 || got[0] != strings.Repeat("x", 10) || got[2] != "xxxxx" {
		t.Errorf("wrapLines() = %q", got)
	}
}
