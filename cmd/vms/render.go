package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vms/vms/internal/logic/command"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/pagination"
)

type styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Message lipgloss.Style
	Error   lipgloss.Style
	Index   lipgloss.Style
	Muted   lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")),
		Index: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
	}
}

// render formats a command result followed by the listing it asks for.
func (a *app) render(res command.Result) string {
	var sb strings.Builder
	sb.WriteString(renderLines(a.styles.Message, res.Message))

	page := res.Page
	if page.Limit == 0 {
		page = pagination.FromPage(1, a.pageSize)
	}
	if lines := listing(a.manager.Model(), res.View, page, a.styles); len(lines) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(lines, "\n"))
	}
	return sb.String()
}

func listing(m *model.Model, view command.View, page pagination.Params, st styles) []string {
	var (
		rows  []string
		total int
	)
	row := func(n int, text string) string {
		return st.Index.Render(fmt.Sprintf("%3d.", n)) + " " + text
	}

	switch view {
	case command.ViewPatients:
		entries := m.FilteredPatients()
		total = len(entries)
		for _, e := range pagination.Slice(entries, page) {
			rows = append(rows, row(e.ID+1, e.Value.String()))
		}
	case command.ViewAppointments:
		entries := m.FilteredAppointments()
		total = len(entries)
		for _, e := range pagination.Slice(entries, page) {
			rows = append(rows, row(e.ID+1, e.Value.String()))
		}
	case command.ViewVaccinations:
		types := m.FilteredVaxTypes()
		total = len(types)
		start, _ := page.Window(total)
		for i, v := range pagination.Slice(types, page) {
			rows = append(rows, row(start+i+1, v.String()))
		}
	case command.ViewKeywords:
		kw := m.Keywords()
		for _, category := range kw.Categories() {
			rows = append(rows, st.Index.Render(category)+": "+strings.Join(kw.Keywords(category), ", "))
		}
		return rows
	default:
		return nil
	}
	return append(rows, st.Muted.Render(page.Footer(total)))
}

// renderLines styles each line on its own. Rendering a multi-line string in
// one call pads every line to the widest one.
func renderLines(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// suggestions lists main words and aliases the first word of an unknown
// command may have been meant as. The prefix is shortened until something
// matches, down to two characters.
func (a *app) suggestions(line string) []string {
	word, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	word = strings.ToLower(word)
	kw := a.manager.Model().Keywords()
	if slices.Contains(command.Groups, word) {
		return nil
	}
	if _, ok := kw.Resolve(word); ok {
		return nil
	}

	runes := []rune(word)
	for n := len(runes); n >= 2; n-- {
		prefix := string(runes[:n])
		out := kw.Suggest(prefix)
		for _, g := range command.Groups {
			if strings.HasPrefix(g, prefix) {
				out = append(out, g)
			}
		}
		if len(out) > 0 {
			slices.Sort(out)
			return slices.Compact(out)
		}
	}
	return nil
}

// errorMessage unwraps to the message meant for the user.
func errorMessage(err error) string {
	var cmdErr *command.Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	return err.Error()
}
