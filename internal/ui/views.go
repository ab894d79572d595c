package ui

import (
	"fmt"
	"strings"

	"napt/internal/history"
	"napt/internal/submit"
)

// View renders the active view.
func (m *Model) View() string {
	switch m.view {
	case viewSettings:
		return m.settingsView()
	case viewHistory:
		return m.historyView()
	default:
		return m.composeView()
	}
}

func (m *Model) composeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("napt — send a thought to Napkin"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Thought"))
	b.WriteString("\n")
	b.WriteString(m.thoughtInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Source URL"))
	b.WriteString("\n")
	b.WriteString(m.sourceInput.View())
	b.WriteString("\n\n")

	if line := statusLine(m.state); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(composeFooter())
	return b.String()
}

func (m *Model) settingsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings — Napkin credentials"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Token"))
	b.WriteString("\n")
	b.WriteString(m.tokenInput.View())
	b.WriteString("\n\n")

	if m.settingsNote != "" {
		b.WriteString(noteStyle.Render(m.settingsNote))
		b.WriteString("\n")
	}

	b.WriteString(settingsFooter())
	return b.String()
}

func (m *Model) historyView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("History — sent thoughts"))
	b.WriteString("\n")
	b.WriteString(m.historyViewport.View())
	b.WriteString("\n")
	b.WriteString(historyFooter())
	return b.String()
}

// statusLine renders the submission state for the compose view. Idle renders
// nothing.
func statusLine(state submit.RequestState) string {
	switch state.Phase() {
	case submit.PhaseLoading:
		return loadingStyle.Render("Sending…")
	case submit.PhaseSuccess:
		resp, _ := state.Response()
		if resp.URL != "" {
			return successStyle.Render("Sent ✓ " + resp.URL)
		}
		return successStyle.Render("Sent ✓")
	case submit.PhaseError:
		return errorStyle.Render(state.Message())
	default:
		return ""
	}
}

// renderHistory formats recent sends for the viewport, newest first.
func renderHistory(entries []history.Entry, width int) string {
	if len(entries) == 0 {
		return "Nothing sent yet."
	}
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(timestampStyle.Render(e.SentAt.Local().Format("Jan 2, 2006 15:04")))
		b.WriteString("\n")
		b.WriteString(truncate(e.Thought, width-2))
		if e.SourceURL != "" {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(truncate("src: "+e.SourceURL, width-2)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func composeFooter() string {
	return footerStyle.Render("enter: send  tab: switch field  ctrl+e: settings  ctrl+r: history  esc: quit")
}

func settingsFooter() string {
	return footerStyle.Render("enter: save  tab: switch field  ctrl+x: clear credentials  esc: back")
}

func historyFooter() string {
	return footerStyle.Render("↑/↓: scroll  esc: back")
}

// truncate shortens s to max runes, appending an ellipsis when trimmed.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return fmt.Sprintf("%s…", string(runes[:max-1]))
}
