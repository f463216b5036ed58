package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/ltmgen/internal/generator"
	"github.com/imamik/ltmgen/internal/tmsh"
	"github.com/imamik/ltmgen/internal/util/naming"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// useStyles reports whether output goes to a terminal. Replaced in tests.
var useStyles = isInteractiveTTY

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// summary is what generate reports after writing a bundle.
type summary struct {
	Dir         string
	Bucket      string
	Keys        []string
	Counts      map[tmsh.Kind]int
	Diagnostics []generator.Diagnostic
}

// render applies style only when styled is set, so piped output stays plain.
func render(style lipgloss.Style, styled bool, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

// renderSummary produces the post-generation report.
func renderSummary(s summary, styled bool) string {
	var b strings.Builder

	b.WriteString(render(titleStyle, styled, "Bundle written: "+s.Dir))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n  %s\n", naming.ScriptFile, naming.ReadmeFile)

	b.WriteString("\n")
	b.WriteString(render(sectionStyle, styled, "Commands"))
	b.WriteString("\n")
	for _, kind := range generator.CommandKinds() {
		n := s.Counts[kind]
		line := fmt.Sprintf("  %-16s %d", kind, n)
		if n == 0 {
			line = render(dimStyle, styled, line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if s.Bucket != "" {
		b.WriteString("\n")
		b.WriteString(render(sectionStyle, styled, "Published to s3://"+s.Bucket))
		b.WriteString("\n")
		for _, k := range s.Keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}

	b.WriteString(renderDiagnostics(s.Diagnostics, styled))

	b.WriteString("\n")
	b.WriteString(render(sectionStyle, styled, "Next steps"))
	b.WriteString("\n")
	b.WriteString("  export F5_HOST=<f5_address> F5_USER=<user> F5_PASS=<password>\n")
	fmt.Fprintf(&b, "  %s\n", filepath.Join(s.Dir, naming.ScriptFile))

	return b.String()
}

// renderDiagnostics lists non-fatal problems, or nothing when there are none.
func renderDiagnostics(diags []generator.Diagnostic, styled bool) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(render(warnStyle, styled, fmt.Sprintf("Warnings (%d)", len(diags))))
	b.WriteString("\n")
	for _, d := range diags {
		fmt.Fprintf(&b, "  ! %s\n", d)
	}
	return b.String()
}
