package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var promptStyle = lipgloss.NewStyle().Bold(true)

// confirmModel is the bubbletea model behind the keep-workspace prompt.
// It defaults to "no": only an explicit y flips the answer.
type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "enter":
			m.value = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(m.title) + " [y/N] "
}

// promptKeep asks whether to keep the workspace after the agent exits.
// Anything but an explicit yes (including EOF, interrupt, or a prompt
// failure) means no, so an unattended run always cleans up.
func promptKeep(in io.Reader, out io.Writer) bool {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return promptKeepTTY()
	}

	// Non-TTY stdin (tests, pipes): read a single answer line.
	fmt.Fprint(out, "\nKeep workspace for inspection? [y/N] ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	return isAffirmative(line)
}

func promptKeepTTY() bool {
	m := confirmModel{title: "\nKeep workspace for inspection?"}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false
	}
	rm := result.(confirmModel)
	return !rm.aborted && rm.value
}

func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
