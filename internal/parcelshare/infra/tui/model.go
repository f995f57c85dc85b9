// Package tui runs the client screens as a bubbletea program.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/observability"
	pkgtime "github.com/klwxsrx/parcelshare/pkg/time"
)

type (
	Screens interface {
		Open(ctx context.Context, path string) (screen.Screen, []screen.Task)
	}

	Router interface {
		Chrome() router.Chrome
		Logout(ctx context.Context)
		ExpiryRedirectPending() bool
	}

	Sessions interface {
		Session() domain.Session
		Reload(ctx context.Context)
	}
)

type Config struct {
	Screens  Screens
	Router   Router
	Sessions Sessions
	Observer observability.Observer
	Clock    pkgtime.Clock
	Logger   log.Logger
	Markdown MarkdownRenderer
	Styles   Styles
	// StartPath is opened with a hard navigation on start.
	StartPath string
	// StatusLine describes the session below the nav bar, optional.
	StatusLine func(domain.Session) string
}

type zone int

const (
	zoneBody zone = iota
	zoneNav
)

type appliedMsg struct {
	mountID string
	apply   screen.Apply
}

type Model struct {
	ctx context.Context
	cfg Config

	mount   *screen.Mount
	current screen.Screen
	chrome  router.Chrome

	zone   zone
	link   int
	cursor int
	inputs []textinput.Model

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

func New(ctx context.Context, cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Styles.Spinner

	if cfg.StartPath == "" {
		cfg.StartPath = router.PathHome
	}

	return Model{
		ctx:      ctx,
		cfg:      cfg,
		spinner:  sp,
		viewport: viewport.New(defaultWidth, 20),
		width:    defaultWidth,
	}
}

// Current is the mounted screen, nil before the first navigation.
func (m Model) Current() screen.Screen {
	return m.current
}

func (m Model) Init() tea.Cmd {
	start := navigateMsg{path: m.cfg.StartPath, hard: true}
	return tea.Batch(
		func() tea.Msg { return start },
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navigateMsg:
		cmd := m.open(msg)
		return m, cmd
	case appliedMsg:
		if m.mount == nil || msg.mountID != m.mount.ID() {
			return m, nil
		}
		msg.apply()
		m.afterChange()
		return m, nil
	case sessionChangedMsg:
		// The expired screen keeps its banner until the scheduled redirect.
		if m.current == nil || m.cfg.Router.ExpiryRedirectPending() || m.cfg.Router.Chrome() == m.chrome {
			return m, nil
		}
		cmd := m.open(navigateMsg{path: m.current.Route().Path})
		return m, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight, 1)
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-inputIndent, 10)
		}
		m.afterChange()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

const (
	headerHeight = 6
	inputIndent  = 28
)

// open mounts the screen for msg.path. Work of the previous screen is
// cancelled and its late results are dropped.
func (m *Model) open(msg navigateMsg) tea.Cmd {
	if m.mount != nil {
		m.mount.Close()
	}
	if msg.hard {
		m.cfg.Sessions.Reload(m.ctx)
	}

	m.mount = screen.NewMount(m.ctx, m.cfg.Observer)
	s, tasks := m.cfg.Screens.Open(m.mount.Context(), msg.path)
	m.current = s
	m.chrome = m.cfg.Router.Chrome()
	m.cursor = 0
	m.link = m.activeLink()
	m.zone = zoneBody
	m.resetInputs()
	m.afterChange()

	m.cfg.Logger.WithField("path", s.Route().Path).Debug(m.mount.Context(), "screen mounted")
	return m.run(tasks...)
}

func (m *Model) run(tasks ...screen.Task) tea.Cmd {
	mount := m.mount
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, task := range tasks {
		if task == nil {
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			return appliedMsg{mountID: mount.ID(), apply: mount.Run(task)}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeLink() int {
	for i, item := range navItems(m.chrome) {
		if item.Path != "" && item.Path == m.current.Route().Path {
			return i
		}
	}
	return 0
}

// afterChange brings the view state in line with the screen state.
func (m *Model) afterChange() {
	if home, ok := m.current.(*screen.Home); ok {
		m.viewport.SetContent(m.view().home(home))
	}

	if f, ok := m.current.(formScreen); ok {
		for i, field := range f.Fields() {
			if i < len(m.inputs) && m.inputs[i].Value() != *field.Value {
				m.inputs[i].SetValue(*field.Value)
			}
		}
	}

	if n := m.selectable(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) resetInputs() {
	m.inputs = nil
	f, ok := m.current.(formScreen)
	if !ok {
		return
	}

	for _, field := range f.Fields() {
		in := textinput.New()
		in.Prompt = ""
		in.Width = max(m.width-inputIndent, 10)
		in.SetValue(*field.Value)
		if field.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		m.inputs = append(m.inputs, in)
	}
	m.focusInput()
}

func (m *Model) focusInput() {
	for i := range m.inputs {
		if i == m.cursor && m.zone == zoneBody {
			m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
}

func (m *Model) selectable() int {
	if f, ok := m.current.(formScreen); ok {
		return len(f.Fields())
	}

	rows, _ := listRows(m.current, m.cfg.Clock.Now(m.ctx))
	n := 0
	for _, r := range rows {
		if !r.placeholder {
			n++
		}
	}
	return n
}

func (m *Model) selectedRow() (row, bool) {
	rows, _ := listRows(m.current, m.cfg.Clock.Now(m.ctx))
	rows = slices.DeleteFunc(rows, func(r row) bool { return r.placeholder })
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m Model) view() view {
	return view{
		styles:   m.cfg.Styles,
		markdown: m.cfg.Markdown,
		width:    m.width,
		now:      m.cfg.Clock.Now(m.ctx),
	}
}

func (m Model) View() string {
	if m.current == nil {
		return m.spinner.View()
	}

	v := m.view()
	sess := m.cfg.Sessions.Session()

	selected := -1
	if m.zone == zoneNav {
		selected = m.link
	}
	out := v.header(sess, m.chrome, m.current.Route().Path, selected)
	if m.cfg.StatusLine != nil && sess.IsAuthenticated() {
		if status := m.cfg.StatusLine(sess); status != "" {
			out += "\n" + m.cfg.Styles.Muted.Render(status)
		}
	}
	out += "\n\n"

	if _, ok := m.current.(*screen.Home); ok {
		out += m.viewport.View()
	} else {
		out += v.body(m.current, m.cursor, m.spinner.View(), func(i int, _ screen.Field) string {
			if i >= len(m.inputs) {
				return ""
			}
			return m.inputs[i].View()
		})
	}

	return out + "\n" + m.cfg.Styles.Help.Render(m.help())
}

func (m Model) help() string {
	if m.zone == zoneNav {
		return "←/→ select · enter open · tab screen · q quit"
	}

	switch m.current.(type) {
	case formScreen:
		if _, ok := m.current.(*screen.Signup); ok {
			return "↑/↓ field · ctrl+r role · enter submit · tab menu · ctrl+c quit"
		}
		return "↑/↓ field · enter submit · tab menu · ctrl+c quit"
	case *screen.Home, *screen.Placeholder:
		return "tab menu · q quit"
	default:
		return "↑/↓ move · enter details · a accept · r reject · R reload · x dismiss · tab menu · q quit"
	}
}
