package tui

import (
	"fmt"
	"io"
	"sync"

	"statement-wizard/domain"
)

var severityPrefix = map[domain.Severity]string{
	domain.SeverityInfo:    "[i]",
	domain.SeveritySuccess: "[ok]",
	domain.SeverityError:   "[!]",
}

// ConsoleNotifier prints wizard notifications as single lines.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(message string, severity domain.Severity) {
	prefix, ok := severityPrefix[severity]
	if !ok {
		prefix = severityPrefix[domain.SeverityInfo]
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", prefix, message)
}

// FocusRecorder remembers the last field the wizard asked to focus so the
// runner can prompt for it again.
type FocusRecorder struct {
	field string
}

func (f *FocusRecorder) Focus(field string) {
	f.field = field
}

// Take returns the pending field and clears it.
func (f *FocusRecorder) Take() string {
	field := f.field
	f.field = ""
	return field
}
