package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/render"
)

type configView int

const (
	viewMain configView = iota
	viewModelSelect
	viewThemeSelect
	viewDevMessage
)

// Menu item indices for main view
const (
	menuModel = iota
	menuStreaming
	menuPreview
	menuBoxes
	menuClipboard
	menuTheme
	menuDevMessage
	menuSave
	menuItemCount
)

var menuLabels = [menuItemCount]string{
	menuModel:      "Model",
	menuStreaming:  "Streaming",
	menuPreview:    "Markdown Preview",
	menuBoxes:      "Message Boxes",
	menuClipboard:  "Copy to Clipboard",
	menuTheme:      "Markdown Theme",
	menuDevMessage: "Developer Message",
	menuSave:       "Save and Exit",
}

// ConfigModel is the bubbletea model of the configuration interview.
// It edits a copy of the configuration; nothing is written to disk here.
type ConfigModel struct {
	config     config.Config
	configPath string
	models     []string
	themes     []string

	view        configView
	cursor      int
	modelCursor int
	themeCursor int
	editor      textarea.Model

	saved bool
	width int
}

// NewConfigModel creates the interview for cfg. models is the selectable model list.
func NewConfigModel(cfg config.Config, models []string) ConfigModel {
	configPath, _ := config.GetConfigPath()

	themes := render.ThemeNames()
	style := cfg.Markdown.Style
	if style == "" {
		style = render.ThemeDark
	}

	editor := textarea.New()
	editor.Placeholder = "Developer message sent at the start of every conversation"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetWidth(72)
	editor.SetHeight(8)
	editor.SetValue(cfg.DevMessage)

	return ConfigModel{
		config:      cfg,
		configPath:  configPath,
		models:      models,
		themes:      themes,
		view:        viewMain,
		modelCursor: max(slices.Index(models, cfg.Model), 0),
		themeCursor: max(slices.Index(themes, style), 0),
		editor:      editor,
		width:       80,
	}
}

// Config returns the edited configuration
func (m ConfigModel) Config() config.Config {
	return m.config
}

// Saved reports whether the interview ended with "Save and Exit"
func (m ConfigModel) Saved() bool {
	return m.saved
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.editor.SetWidth(max(min(size.Width-8, 100), 20))
		return m, nil
	}

	if m.view == viewDevMessage {
		return m.updateEditor(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.view != viewMain {
			m.view = viewMain
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "enter", " ":
		return m.handleSelect()
	}

	return m, nil
}

func (m ConfigModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			// discard edits
			m.editor.SetValue(m.config.DevMessage)
			m.editor.Blur()
			m.view = viewMain
			return m, nil
		case "ctrl+s":
			if text := strings.TrimSpace(m.editor.Value()); text != "" {
				m.config.DevMessage = text
			}
			m.editor.Blur()
			m.view = viewMain
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *ConfigModel) moveCursor(delta int) {
	wrap := func(v, n int) int {
		if n == 0 {
			return 0
		}
		return ((v % n) + n) % n
	}

	switch m.view {
	case viewMain:
		m.cursor = wrap(m.cursor+delta, menuItemCount)
	case viewModelSelect:
		m.modelCursor = wrap(m.modelCursor+delta, len(m.models))
	case viewThemeSelect:
		m.themeCursor = wrap(m.themeCursor+delta, len(m.themes))
	}
}

func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewModelSelect:
		if len(m.models) > 0 {
			m.config.Model = m.models[m.modelCursor]
		}
		m.view = viewMain
		return m, nil

	case viewThemeSelect:
		if len(m.themes) > 0 {
			m.config.Markdown.Style = m.themes[m.themeCursor]
		}
		m.view = viewMain
		return m, nil
	}

	switch m.cursor {
	case menuModel:
		m.view = viewModelSelect
	case menuStreaming:
		m.config.EnableStreaming = !m.config.EnableStreaming
	case menuPreview:
		m.config.PreviewMarkdown = !m.config.PreviewMarkdown
	case menuBoxes:
		m.config.MessageBoxes = !m.config.MessageBoxes
	case menuClipboard:
		m.config.CopyToClipboard = !m.config.CopyToClipboard
	case menuTheme:
		m.view = viewThemeSelect
	case menuDevMessage:
		m.view = viewDevMessage
		m.editor.SetValue(m.config.DevMessage)
		return m, m.editor.Focus()
	case menuSave:
		m.saved = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the interview
func (m ConfigModel) View() string {
	contentWidth := max(m.width-4, 40)

	header := configHeaderStyle.Render("✦ Configuration")
	path := configPathStyle.Render("  " + m.configPath)

	var body string
	switch m.view {
	case viewModelSelect:
		body = m.renderChoices("Select Model", m.models, m.modelCursor, m.config.Model)
	case viewThemeSelect:
		body = m.renderChoices("Select Markdown Theme", m.themes, m.themeCursor, m.config.Markdown.Style)
	case viewDevMessage:
		body = lipgloss.JoinVertical(lipgloss.Left,
			configSectionTitleStyle.Render("Developer Message"), "", m.editor.View())
	default:
		body = m.renderMainMenu()
	}

	panel := configPanelStyle.Width(contentWidth).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, path, panel, m.renderStatusBar())
}

func (m ConfigModel) renderMainMenu() string {
	items := []string{configSectionTitleStyle.Render("Settings"), ""}

	for i := 0; i < menuItemCount; i++ {
		cursor := "  "
		style := configMenuItemStyle
		if m.cursor == i {
			cursor = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}

		label := style.Render(fmt.Sprintf("%-20s", menuLabels[i]))
		if i == menuSave {
			items = append(items, "", cursor+label)
			continue
		}
		items = append(items, cursor+label+m.menuValue(i))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m ConfigModel) menuValue(item int) string {
	switch item {
	case menuModel:
		return configValueStyle.Render(m.config.Model)
	case menuStreaming:
		return renderBool(m.config.EnableStreaming)
	case menuPreview:
		return renderBool(m.config.PreviewMarkdown)
	case menuBoxes:
		return renderBool(m.config.MessageBoxes)
	case menuClipboard:
		return renderBool(m.config.CopyToClipboard)
	case menuTheme:
		return configValueStyle.Render(m.config.Markdown.Style)
	case menuDevMessage:
		first, _, _ := strings.Cut(m.config.DevMessage, "\n")
		if len(first) > 32 {
			first = first[:32] + "…"
		}
		return configValueStyle.Render(first)
	}
	return ""
}

func (m ConfigModel) renderChoices(title string, choices []string, cursor int, current string) string {
	items := []string{configSectionTitleStyle.Render(title), ""}
	for i, choice := range choices {
		prefix := "  "
		style := configMenuItemStyle
		if i == cursor {
			prefix = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}
		mark := ""
		if choice == current {
			mark = configCurrentStyle.Render(" (current)")
		}
		items = append(items, prefix+style.Render(choice)+mark)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func renderBool(value bool) string {
	if value {
		return configEnabledStyle.Render("enabled")
	}
	return configDisabledStyle.Render("disabled")
}

func (m ConfigModel) renderStatusBar() string {
	type shortcut struct{ key, desc string }
	var shortcuts []shortcut

	switch m.view {
	case viewMain:
		shortcuts = []shortcut{{"↑↓", "Navigate"}, {"Enter", "Select"}, {"Esc", "Cancel"}}
	case viewDevMessage:
		shortcuts = []shortcut{{"Ctrl+S", "Keep"}, {"Esc", "Discard"}}
	default:
		shortcuts = []shortcut{{"↑↓", "Navigate"}, {"Enter", "Select"}, {"Esc", "Back"}}
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	return configStatusBarStyle.Render(strings.Join(items, "  │  "))
}

// RunInterview runs the configuration interview on the terminal and returns
// the edited configuration. ok is false when the user cancelled.
func RunInterview(cfg config.Config, models []string) (config.Config, bool, error) {
	p := tea.NewProgram(NewConfigModel(cfg, models), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return cfg, false, fmt.Errorf("config interview failed: %w", err)
	}

	m, ok := final.(ConfigModel)
	if !ok || !m.Saved() {
		return cfg, false, nil
	}
	return m.Config(), true, nil
}
