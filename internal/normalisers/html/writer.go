package html

import "strings"

// writer accumulates markdown one line at a time.
type writer struct {
	out     strings.Builder
	current strings.Builder
	// blank is true when the last written line was empty, or nothing has
	// been written yet.
	blank   bool
	started bool
}

// text appends inline text to the current line, collapsing whitespace.
func (w *writer) text(s string) {
	if s == "" {
		return
	}

	leading := isSpace(s[0])
	trailing := isSpace(s[len(s)-1])
	fields := strings.Fields(s)

	if len(fields) == 0 {
		w.space()
		return
	}
	if leading {
		w.space()
	}
	w.current.WriteString(strings.Join(fields, " "))
	if trailing {
		w.current.WriteByte(' ')
	}
}

// space adds a single separating space unless the line is empty or
// already ends in one.
func (w *writer) space() {
	line := w.current.String()
	if line == "" || strings.HasSuffix(line, " ") {
		return
	}
	w.current.WriteByte(' ')
}

// line writes s as a complete line of its own.
func (w *writer) line(s string) {
	w.endLine()
	w.current.WriteString(s)
	w.endLine()
}

// endLine flushes the current line if it has content.
func (w *writer) endLine() {
	line := strings.TrimSpace(w.current.String())
	w.current.Reset()
	if line == "" {
		return
	}
	w.out.WriteString(line)
	w.out.WriteByte('\n')
	w.blank = false
	w.started = true
}

// paragraph ends the current line and leaves exactly one blank line
// before the next content.
func (w *writer) paragraph() {
	w.endLine()
	if !w.started || w.blank {
		return
	}
	w.out.WriteByte('\n')
	w.blank = true
}

// String returns the markdown written so far without trailing blank lines.
func (w *writer) String() string {
	w.endLine()
	return strings.TrimRight(w.out.String(), "\n")
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
