package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 12
	statusIndent     = "  "
)

// statusReport accumulates rendered status lines and remembers the most
// severe kind seen.
type statusReport struct {
	colorize bool
	lines    []string
	worst    statusKind
}

func newStatusReport(out io.Writer) *statusReport {
	return &statusReport{colorize: shouldColorize(out)}
}

func (r *statusReport) section(title string) {
	r.lines = append(r.lines, renderSectionHeader(title, r.colorize)...)
}

func (r *statusReport) add(label string, kind statusKind, format string, args ...any) {
	if severity(kind) > severity(r.worst) {
		r.worst = kind
	}
	r.lines = append(r.lines, renderStatusLine(label, kind, fmt.Sprintf(format, args...), r.colorize))
}

// overall appends a line carrying the worst kind added so far.
func (r *statusReport) overall(ok, pending, failed string) {
	message := ok
	switch r.worst {
	case statusWarn:
		message = pending
	case statusError:
		message = failed
	}
	kind := r.worst
	if kind == statusInfo {
		kind = statusOK
	}
	r.lines = append(r.lines, "", renderStatusLine("Overall", kind, message, r.colorize))
}

func (r *statusReport) writeTo(out io.Writer) {
	for _, line := range r.lines {
		fmt.Fprintln(out, line)
	}
}

// severity orders kinds for worst-of tracking; OK and INFO rank equally.
func severity(kind statusKind) int {
	switch kind {
	case statusWarn:
		return 1
	case statusError:
		return 2
	default:
		return 0
	}
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ansiBlue
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
