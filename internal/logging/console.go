package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// consoleHook echoes events for the operator: plain messages on stdout,
// warnings and errors on stderr behind a "<tag>: ERROR:" prefix.
type consoleHook struct {
	tag        string
	out        io.Writer
	errOut     io.Writer
	errorLabel lipgloss.Style
	warnLabel  lipgloss.Style
}

func newConsoleHook(tag string, out, errOut io.Writer) *consoleHook {
	h := &consoleHook{tag: tag, out: out, errOut: errOut}
	if errOut != nil {
		// Styles follow the capabilities of the stream they are written to,
		// so redirected output stays free of escape sequences.
		renderer := lipgloss.NewRenderer(errOut)
		h.errorLabel = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		h.warnLabel = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	}
	return h
}

func (h *consoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *consoleHook) Fire(entry *logrus.Entry) error {
	if entry.Level <= logrus.WarnLevel {
		if h.errOut == nil {
			return nil
		}
		label := h.errorLabel.Render("ERROR")
		if entry.Level == logrus.WarnLevel {
			label = h.warnLabel.Render("WARNING")
		}
		_, err := fmt.Fprintf(h.errOut, "%s: %s: %s\n", h.tag, label, entry.Message)
		return err
	}

	if h.out == nil {
		return nil
	}
	_, err := fmt.Fprintln(h.out, entry.Message)
	return err
}
