// Package tui holds the interactive configuration interview and shared terminal styles.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/render"
)

var (
	configHeaderStyle = lipgloss.NewStyle().
				Foreground(render.ColorPrimary).
				Bold(true).
				MarginBottom(1)

	configPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(render.ColorBorder).
				Padding(1, 2)

	configSectionTitleStyle = lipgloss.NewStyle().
				Foreground(render.ColorSecondary).
				Bold(true)

	configMenuItemStyle = lipgloss.NewStyle().
				Foreground(render.ColorText)

	configMenuSelectedStyle = lipgloss.NewStyle().
				Foreground(render.ColorAccent).
				Bold(true)

	configCursorStyle = lipgloss.NewStyle().
				Foreground(render.ColorAccent)

	configValueStyle = lipgloss.NewStyle().
				Foreground(render.ColorTextDim)

	configEnabledStyle = lipgloss.NewStyle().
				Foreground(render.ColorSecondary)

	configDisabledStyle = lipgloss.NewStyle().
				Foreground(render.ColorError)

	configPathStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMute).
			Italic(true)

	configCurrentStyle = lipgloss.NewStyle().
				Foreground(render.ColorSecondary)

	configStatusBarStyle = lipgloss.NewStyle().
				Foreground(render.ColorTextMute).
				MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextDim)
)

// FormatError returns a styled error message with the details carried by
// structured API errors.
func FormatError(err error, context string) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	if context != "" {
		sb.WriteString(render.ErrorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))
	} else {
		sb.WriteString(render.ErrorStyle.Render(fmt.Sprintf("✗ %v", err)))
	}

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(render.DimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := errors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(render.DimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	if body := errors.GetResponseBody(err); body != "" {
		sb.WriteString(render.DimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	}

	switch {
	case errors.IsAuthError(err):
		sb.WriteString(render.DimStyle.Render("\n  Hint: check OPENAI_API_KEY / ANTHROPIC_API_KEY"))
	case errors.IsRateLimitError(err):
		sb.WriteString(render.DimStyle.Render("\n  Hint: rate limited. Try again later or switch models with :cm"))
	case errors.IsTimeoutError(err):
		sb.WriteString(render.DimStyle.Render("\n  Hint: raise request_timeout in the config if replies are long"))
	case errors.IsNetworkError(err):
		sb.WriteString(render.DimStyle.Render("\n  Hint: check your internet connection and try again"))
	}

	return sb.String()
}
