package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Errorf writes a styled error line to w.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, errStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf writes a styled warning line to w.
func Warnf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(format, args...)))
}
