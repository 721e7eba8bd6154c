package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/combogen/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner outputs a compact colored banner with the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	title := termenv.String("combogen").Foreground(p.Color("#a78bfa")).Bold()
	ver := termenv.String(version).Foreground(p.Color("#818cf8")).Faint()
	fmt.Fprintf(w, "\n  %s %s\n\n", title, ver)
}

// PrintDiagnostics lists non-fatal findings, highlighted when the terminal allows it.
func PrintDiagnostics(w io.Writer, diags []domain.Diagnostic) {
	p := termenv.EnvColorProfile()
	for _, d := range diags {
		marker := termenv.String("warning:").Foreground(p.Color("#fbbf24")).Bold()
		fmt.Fprintf(w, "%s %s\n", marker, d.Error())
	}
}

// PrintSuccess prints a confirmation line.
func PrintSuccess(w io.Writer, format string, args ...any) {
	p := termenv.EnvColorProfile()
	mark := termenv.String("✔").Foreground(p.Color("#34d399"))
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// PrintFailure prints an error line.
func PrintFailure(w io.Writer, err error) {
	p := termenv.EnvColorProfile()
	mark := termenv.String("✘").Foreground(p.Color("#fb7185"))
	fmt.Fprintf(w, "%s %v\n", mark, err)
}
