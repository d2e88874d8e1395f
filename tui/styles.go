package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	normalStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(14)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("33")).
				Width(14)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	activeTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	inactiveTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	statusPendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusProgressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	statusFailedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)
