package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cryptarch/cryptarch"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func banner() string {
	return titleStyle.Render("cryptarch") + dimStyle.Render(" · classical ciphers & encodings")
}

// renderList prints ciphers and encodings in two sections, each line
// showing the name, required keys and one-line summary.
func renderList(entries []*cryptarch.Entry) string {
	var ciphers, encodings []string
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		line := "  " + nameStyle.Render(fmt.Sprintf("%-*s", width, e.Name))
		if len(e.KeyNames) > 0 {
			line += "  " + keyStyle.Render("keys: "+strings.Join(e.KeyNames, ", "))
		}
		line += "  " + dimStyle.Render(e.Summary)
		if e.Keyless {
			encodings = append(encodings, line)
		} else {
			ciphers = append(ciphers, line)
		}
	}
	var b strings.Builder
	b.WriteString(banner() + "\n\n")
	b.WriteString(sectionStyle.Render("Ciphers") + "\n")
	b.WriteString(strings.Join(ciphers, "\n"))
	b.WriteString("\n\n" + sectionStyle.Render("Encodings") + "\n")
	b.WriteString(strings.Join(encodings, "\n"))
	return b.String()
}

func renderInfo(e *cryptarch.Entry) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(e.Name) + ": " + e.Summary + "\n\n")
	b.WriteString(e.Info)
	if len(e.KeyNames) > 0 {
		b.WriteString("\n\n" + keyStyle.Render("keys: "+strings.Join(e.KeyNames, ", ")))
	}
	return b.String()
}
