package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/itsatony/go-seqgen"
)

type diagnosticStyles struct {
	location *color.Color
	kind     *color.Color
	gutter   *color.Color
	caret    *color.Color
}

func newDiagnosticStyles(noColor bool) diagnosticStyles {
	s := diagnosticStyles{
		location: color.New(color.Bold),
		kind:     color.New(color.FgRed, color.Bold),
		gutter:   color.New(color.FgHiBlue, color.Bold),
		caret:    color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{s.location, s.kind, s.gutter, s.caret} {
			c.DisableColor()
		}
	}
	return s
}

// printDiagnostic renders
//
//	name:line:column: kind error: message
//	line | source text
//	     |     ^
//
// The snippet is omitted when the position lies outside source.
func printDiagnostic(w io.Writer, name, source string, diag seqgen.Diagnostic, noColor bool) {
	styles := newDiagnosticStyles(noColor)
	pos := diag.Position

	if pos.Line > 0 {
		styles.location.Fprintf(w, FmtDiagnosticLocation, name, pos.Line, pos.Column)
	} else {
		styles.location.Fprintf(w, FmtDiagnosticFile, name)
	}
	styles.kind.Fprintf(w, FmtDiagnosticKind, diag.Kind)
	fmt.Fprintf(w, FmtDiagnosticMessage, diag.Message)

	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return
	}
	text := strings.TrimRight(lines[pos.Line-1], "\r")
	width := len(strconv.Itoa(pos.Line))

	styles.gutter.Fprintf(w, FmtSnippetLine, width, pos.Line)
	fmt.Fprintf(w, FmtSnippetText, text)

	styles.gutter.Fprintf(w, FmtSnippetGutter, width, "")
	fmt.Fprint(w, caretPadding(text, pos.Column))
	styles.caret.Fprintf(w, FmtSnippetText, SnippetCaret)
}

// caretPadding keeps tabs so the caret lines up under the column
func caretPadding(text string, column int) string {
	var sb strings.Builder
	for i := 0; i < column-1 && i < len(text); i++ {
		if text[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
