package render

import "github.com/charmbracelet/lipgloss"

// Palette colors shared by message boxes, the spinner and the config interview
var (
	ColorText      = lipgloss.Color("#c0caf5")
	ColorTextDim   = lipgloss.Color("#565f89")
	ColorTextMute  = lipgloss.Color("#3b4261")
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#9ece6a")
	ColorAccent    = lipgloss.Color("#bb9af7")
	ColorWarning   = lipgloss.Color("#e0af68")
	ColorError     = lipgloss.Color("#f7768e")
	ColorBorder    = lipgloss.Color("#414868")
)

var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"),
	lipgloss.Color("#feca57"),
	lipgloss.Color("#48dbfb"),
	lipgloss.Color("#ff9ff3"),
	lipgloss.Color("#54a0ff"),
	lipgloss.Color("#5f27cd"),
	lipgloss.Color("#00d2d3"),
	lipgloss.Color("#1dd1a1"),
}

// Styles for short status lines
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	DimStyle     = lipgloss.NewStyle().Foreground(ColorTextDim)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TitleStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)
