package util

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset    = "\033[0m"
	Bold     = "\033[1m"
	Dim      = "\033[2m"
	Green    = "\033[32m"
	Yellow   = "\033[33m"
	BoldCyan = "\033[1;36m"
)

// isColorTerminal reports whether w is a terminal and NO_COLOR is not set.
func isColorTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Log writes an informational message to w with a cyan bold "==>" prefix.
func Log(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", Colorf(w, BoldCyan, "==>"), fmt.Sprintf(msg, args...))
}

// Warn writes a warning message to w.
func Warn(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, "%s\n", Colorf(w, Yellow, "WARN: "+msg, args...))
}

// Section writes a bold section header (e.g., "==> HDP-2.0") to w.
func Section(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintln(w, Colorf(w, Bold, "==> "+msg, args...))
}

// Colorf formats a string, wrapping it in color when w is a color terminal.
func Colorf(w io.Writer, c, format string, args ...interface{}) string {
	formatted := fmt.Sprintf(format, args...)
	if !isColorTerminal(w) {
		return formatted
	}
	return c + formatted + Reset
}

// SelectionRow is one service line of a selection table.
type SelectionRow struct {
	Name        string
	DisplayName string
	Selected    bool
	Installed   bool
	Locked      bool // Not user-toggleable (hidden or disabled)
}

// SelectionTable writes rows as an aligned table. Selected services are
// green, unselected ones dim.
func SelectionTable(w io.Writer, rows []SelectionRow) {
	if len(rows) == 0 {
		return
	}

	// Column widths use raw text length, not ANSI-colored length
	nameW, displayW := 0, 0
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		displayW = max(displayW, len(r.DisplayName))
	}

	for _, r := range rows {
		mark, c := "[ ]", Dim
		if r.Selected {
			mark, c = "[x]", Green
		}
		detail := ""
		switch {
		case r.Installed:
			detail = "installed"
		case r.Locked:
			detail = "locked"
		}
		line := fmt.Sprintf("%s %-*s  %-*s", mark, nameW, r.Name, displayW, r.DisplayName)
		if detail == "" {
			fmt.Fprintf(w, "  %s\n", Colorf(w, c, "%s", line))
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", Colorf(w, c, "%s", line), Colorf(w, Dim, "%s", detail))
	}
}
