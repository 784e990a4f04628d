package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
)

var (
	launcherHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	launcherTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	launcherSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	launcherFailureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	launcherDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).PaddingLeft(4)
	launcherStatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	launcherHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

type launcherKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Copy      key.Binding
	CopyRolls key.Binding
	Reroll    key.Binding
	Quit      key.Binding
}

func defaultLauncherKeys() launcherKeyMap {
	return launcherKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Copy:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy")),
		CopyRolls: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy rolls")),
		Reroll:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reroll")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k launcherKeyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Copy, k.CopyRolls, k.Reroll, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Launcher is an interactive launcher window: it re-runs the plugin on every
// keystroke and copies the selected entry's actions.
type Launcher struct {
	plugin     ports.LauncherPlugin
	clipboard  ports.Clipboard
	trigger    string
	copyAction string
	keys       launcherKeyMap

	input    textinput.Model
	query    string
	entries  []domain.DisplayEntry
	selected int
	status   string
}

// NewLauncher builds the launcher model. copyAction chooses which action Enter
// copies; Ctrl+Y always copies the rolls.
func NewLauncher(plugin ports.LauncherPlugin, clipboard ports.Clipboard, trigger, copyAction, initial string) *Launcher {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "2d6 1d20"
	input.SetValue(initial)
	input.Focus()

	l := &Launcher{
		plugin:     plugin,
		clipboard:  clipboard,
		trigger:    trigger,
		copyAction: copyAction,
		keys:       defaultLauncherKeys(),
		input:      input,
	}
	l.refresh()
	return l
}

// RunLauncher runs the launcher until the user quits.
func RunLauncher(l *Launcher) error {
	if _, err := tea.NewProgram(l).Run(); err != nil {
		return fmt.Errorf("launcher: %w", err)
	}
	return nil
}

func (l *Launcher) Init() tea.Cmd {
	return textinput.Blink
}

func (l *Launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, l.keys.Quit):
			return l, tea.Quit
		case key.Matches(msg, l.keys.Up):
			if l.selected > 0 {
				l.selected--
			}
			return l, nil
		case key.Matches(msg, l.keys.Down):
			if l.selected < len(l.entries)-1 {
				l.selected++
			}
			return l, nil
		case key.Matches(msg, l.keys.Copy):
			l.copySelected(domain.ActionLabel(l.copyAction))
			return l, nil
		case key.Matches(msg, l.keys.CopyRolls):
			l.copySelected(domain.ActionCopyRolls)
			return l, nil
		case key.Matches(msg, l.keys.Reroll):
			l.reroll()
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	if l.input.Value() != l.query {
		l.refresh()
	}
	return l, cmd
}

func (l *Launcher) View() string {
	var b strings.Builder
	b.WriteString(launcherHeaderStyle.Render("Dice Roll"))
	b.WriteString("\n")
	b.WriteString(l.input.View())
	b.WriteString("\n\n")

	for i, entry := range l.entries {
		style := launcherTitleStyle
		cursor := "  "
		if entry.Kind == domain.EntryFailure {
			style = launcherFailureStyle
		}
		if i == l.selected {
			style = launcherSelectedStyle
			cursor = "> "
		}
		b.WriteString(style.Render(cursor + entry.Title))
		b.WriteString("\n")
		if entry.Subtitle != "" {
			b.WriteString(launcherDetailStyle.Render(entry.Subtitle))
			b.WriteString("\n")
		}
	}

	if l.status != "" {
		b.WriteString("\n")
		b.WriteString(launcherStatusStyle.Render(l.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(launcherHelpStyle.Render(l.keys.help()))
	return b.String()
}

// refresh re-queries the plugin for the current input and keeps the selection
// in range.
func (l *Launcher) refresh() {
	l.query = l.input.Value()
	l.entries = l.plugin.HandleQuery(domain.StripTrigger(l.query, l.trigger))
	if l.selected >= len(l.entries) {
		l.selected = len(l.entries) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.status = ""
}

func (l *Launcher) reroll() {
	selected := l.selected
	l.refresh()
	if selected < len(l.entries) {
		l.selected = selected
	}
	l.status = "Rerolled"
}

func (l *Launcher) copySelected(label string) {
	if len(l.entries) == 0 {
		return
	}
	entry := l.entries[l.selected]
	action, ok := entry.Action(label)
	if !ok {
		l.status = "Nothing to copy"
		return
	}
	if l.clipboard == nil || !l.clipboard.Enabled() {
		l.status = "Clipboard unavailable"
		return
	}
	if err := l.clipboard.Copy(action.Text); err != nil {
		l.status = "Copy failed: " + err.Error()
		return
	}
	l.status = "Copied " + action.Text
}
