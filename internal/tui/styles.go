package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mark041002/chatbot-tui/internal/i18n"
)

// Accent color used for the banner and headings.
const accentColor = "#00ADD8"

// CHAT ASCII art shown above the welcome text.
var bannerArt = []string{
	"  ██████╗██╗  ██╗ █████╗ ████████╗",
	" ██╔════╝██║  ██║██╔══██╗╚══██╔══╝",
	" ██║     ███████║███████║   ██║   ",
	" ██║     ██╔══██║██╔══██║   ██║   ",
	" ╚██████╗██║  ██║██║  ██║   ██║   ",
	"  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ",
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	Banner    lipgloss.Style
	Title     lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	System    lipgloss.Style
	Tips      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Info      lipgloss.Style
	Prompt    lipgloss.Style
	Separator lipgloss.Style
	StatusBar lipgloss.Style
	Selected  lipgloss.Style
	Overlay   lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)),
		User:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		System:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240")),
		Tips:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accentColor)).
			Padding(1, 2),
	}
}

// RenderBanner returns the ASCII art banner as a styled string.
func (s Styles) RenderBanner() string {
	var b strings.Builder
	for _, line := range bannerArt {
		_, _ = b.WriteString(s.Banner.Render(line))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}

// RenderWelcome returns the greeting, example questions and help hint
// shown while the transcript is still empty.
func (s Styles) RenderWelcome() string {
	var b strings.Builder
	_, _ = b.WriteString(s.Tips.Render(i18n.T("welcome.assistant")))
	_, _ = b.WriteString("\n\n")
	_, _ = b.WriteString(s.Title.Render(i18n.T("welcome.examples")))
	_, _ = b.WriteString("\n")
	for _, key := range []string{"welcome.q1", "welcome.q2", "welcome.q3"} {
		_, _ = b.WriteString(s.Tips.Render("  • " + i18n.T(key)))
		_, _ = b.WriteString("\n")
	}
	_, _ = b.WriteString("\n")
	_, _ = b.WriteString(s.System.Render(i18n.T("welcome.help")))
	_, _ = b.WriteString("\n")
	return b.String()
}
