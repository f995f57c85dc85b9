package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const navigationQueueSize = 16

type navigateMsg struct {
	path string
	hard bool
}

type sessionChangedMsg struct{}

// SessionChanged tells the model that the persisted session was changed by
// another process and has been reloaded.
func SessionChanged() tea.Msg {
	return sessionChangedMsg{}
}

// Navigator queues navigation requests for the running program. It is safe
// to call from any goroutine, including the one running Update.
type Navigator struct {
	queue chan tea.Msg
}

func NewNavigator() *Navigator {
	return &Navigator{queue: make(chan tea.Msg, navigationQueueSize)}
}

func (n *Navigator) Navigate(path string) {
	n.push(navigateMsg{path: path})
}

func (n *Navigator) Redirect(path string) {
	n.push(navigateMsg{path: path, hard: true})
}

// Messages delivers queued navigations; forward them with tea.Program.Send.
func (n *Navigator) Messages() <-chan tea.Msg {
	return n.queue
}

// push drops msg when the queue is full; nothing reads it once the program
// has stopped.
func (n *Navigator) push(msg tea.Msg) {
	select {
	case n.queue <- msg:
	default:
	}
}
