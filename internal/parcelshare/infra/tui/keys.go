package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "esc":
		if m.zone == zoneNav {
			m.zone = zoneBody
		} else {
			m.zone = zoneNav
		}
		m.focusInput()
		return m, nil
	}

	if m.current == nil {
		return m, nil
	}
	if m.zone == zoneNav {
		return m.handleNavKey(msg)
	}

	switch s := m.current.(type) {
	case formScreen:
		return m.handleFormKey(s, msg)
	case *screen.Home:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := navItems(m.chrome)
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		if m.link > 0 {
			m.link--
		}
	case "right", "l":
		if m.link < len(items)-1 {
			m.link++
		}
	case "L":
		if m.chrome.HasLogout() {
			m.cfg.Router.Logout(m.ctx)
		}
	case "enter", " ":
		if m.link >= len(items) {
			return m, nil
		}
		item := items[m.link]
		if item.Path == "" {
			m.cfg.Router.Logout(m.ctx)
			return m, nil
		}
		cmd := m.open(navigateMsg{path: item.Path})
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFormKey(s formScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := s.Fields()
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.focusInput()
		return m, nil
	case "down":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
		m.focusInput()
		return m, nil
	case "ctrl+r":
		if signup, ok := s.(*screen.Signup); ok {
			signup.SelectRole(nextRole(signup))
		}
		return m, nil
	case "ctrl+x":
		s.DismissBanner()
		return m, nil
	case "enter":
		if m.cursor < len(fields)-1 {
			m.cursor++
			m.focusInput()
			return m, nil
		}
		cmd := m.run(s.Submit())
		m.afterChange()
		return m, cmd
	}

	if m.cursor >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
	*fields[m.cursor].Value = m.inputs[m.cursor].Value()
	return m, cmd
}

func nextRole(s *screen.Signup) domain.Role {
	roles := s.Roles()
	for i, role := range roles {
		if role == s.Input.Role {
			return roles[(i+1)%len(roles)]
		}
	}
	return roles[0]
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.selectable()-1 {
			m.cursor++
		}
		return m, nil
	case "x":
		m.current.DismissBanner()
		return m, nil
	case "R":
		if l, ok := m.current.(interface{ Reload() screen.Task }); ok {
			return m, m.run(l.Reload())
		}
		return m, nil
	}

	r, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	var task screen.Task
	switch msg.String() {
	case "enter", " ":
		switch s := m.current.(type) {
		case *screen.TravelerSuggestions:
			if !r.candidate {
				task = s.Expand(r.id)
			}
		case interface{ Toggle(int64) }:
			s.Toggle(r.id)
		}
	case "a":
		switch s := m.current.(type) {
		case *screen.ParcelRequests:
			task = s.Accept(r.id)
		case *screen.TravelerSuggestions:
			if r.candidate {
				task = s.Accept(r.id, r.travelPlan)
			}
		}
	case "r":
		switch s := m.current.(type) {
		case *screen.ParcelAccepted:
			task = s.Reject(r.id)
		case *screen.TravelerRequests:
			task = s.Reject(r.id)
		}
	default:
		return m, nil
	}

	m.afterChange()
	return m, m.run(task)
}
