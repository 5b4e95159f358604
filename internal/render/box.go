package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Speaker selects the label and alignment of a message box
type Speaker int

const (
	SpeakerUser Speaker = iota
	SpeakerAssistant
)

const (
	maxChatWidth        = 100
	messageWidthPercent = 80
)

func (s Speaker) label() string {
	if s == SpeakerUser {
		return "User"
	}
	return "Assistant"
}

func (s Speaker) color() lipgloss.Color {
	if s == SpeakerUser {
		return ColorSecondary
	}
	return ColorPrimary
}

// Box frames text in a labelled border. User boxes are right-aligned within
// the chat column, assistant boxes sit on the left.
func Box(text string, speaker Speaker, termWidth int) string {
	chatWidth := min(termWidth, maxChatWidth)
	maxWidth := chatWidth * messageWidthPercent / 100

	label := speaker.label()
	minWidth := runewidth.StringWidth(label) + 6

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := maxWidth
	if len(lines) == 1 {
		width = min(max(runewidth.StringWidth(lines[0])+4, minWidth), maxWidth)
	}
	width = max(width, minWidth)
	inner := width - 4

	border := lipgloss.NewStyle().Foreground(speaker.color())
	bar := border.Render("│")
	fill := width - 2 - runewidth.StringWidth(label)

	var top string
	if speaker == SpeakerUser {
		top = border.Render("┌"+strings.Repeat("─", fill)) + label + border.Render("┐")
	} else {
		top = border.Render("┌") + label + border.Render(strings.Repeat("─", fill)+"┐")
	}
	bottom := border.Render("└" + strings.Repeat("─", width-2) + "┘")

	prefix := ""
	if speaker == SpeakerUser && chatWidth > width {
		prefix = strings.Repeat(" ", chatWidth-width)
	}

	var sb strings.Builder
	sb.WriteString(prefix + top + "\n")
	for _, line := range wrapLines(lines, inner) {
		sb.WriteString(prefix + bar + " " + runewidth.FillRight(line, inner) + " " + bar + "\n")
	}
	sb.WriteString(prefix + bottom)

	return sb.String()
}

// wrapLines hard-wraps every line to width display cells
func wrapLines(lines []string, width int) []string {
	var out []string
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")
		if line == "" {
			out = append(out, "")
			continue
		}
		wrapped := runewidth.Wrap(line, width)
		for _, w := range strings.Split(wrapped, "\n") {
			// Wrap keeps words longer than width intact
			for runewidth.StringWidth(w) > width {
				head := runewidth.Truncate(w, width, "")
				out = append(out, head)
				w = w[len(head):]
			}
			out = append(out, w)
		}
	}
	return out
}
