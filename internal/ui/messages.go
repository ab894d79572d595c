package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"napt/internal/creds"
	"napt/internal/history"
	"napt/internal/submit"
)

type submitDoneMsg struct {
	state submit.RequestState
}

type settingsSavedMsg struct {
	err error
}

type settingsClearedMsg struct {
	err error
}

type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

type clearNoteMsg struct{}

const historyFetchLimit = 100

// submitCmd runs the submission off the update loop and delivers the
// resulting RequestState as a message.
func (m *Model) submitCmd(thought, source string) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{state: m.opts.Submitter.Submit(m.opts.Context, thought, source)}
	}
}

func (m *Model) saveCredsCmd(email, token string) tea.Cmd {
	return func() tea.Msg {
		pair := creds.Credentials{
			Email: strings.TrimSpace(email),
			Token: strings.TrimSpace(token),
		}
		return settingsSavedMsg{err: m.opts.Creds.Save(pair)}
	}
}

func (m *Model) clearCredsCmd() tea.Cmd {
	return func() tea.Msg {
		return settingsClearedMsg{err: m.opts.Creds.Clear()}
	}
}

func (m *Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.opts.History.Recent(historyFetchLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func clearNoteAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearNoteMsg{}
	})
}
