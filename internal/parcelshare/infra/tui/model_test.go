package tui_test

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	backendmock "github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend/mock"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/session"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/infra/tui"
	"github.com/klwxsrx/parcelshare/pkg/kv"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/observability"
	pkgtime "github.com/klwxsrx/parcelshare/pkg/time"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	api       *backendmock.API
	store     *session.Store
	navigator *tui.Navigator
	model     tea.Model

	// deferTimers holds delayed router work in timers until fireTimers.
	deferTimers bool
	timers      []func()
}

func newHarness(t *testing.T, sess *domain.Session, start string) *harness {
	t.Helper()
	h := &harness{
		api:       backendmock.NewAPI(gomock.NewController(t)),
		store:     session.NewStore(kv.NewMemory(), log.NewStub()),
		navigator: tui.NewNavigator(),
	}
	if sess != nil {
		h.store.Set(context.Background(), *sess)
	}

	r := router.New(h.store, h.navigator, log.NewStub(), router.WithAfterFunc(func(_ time.Duration, f func()) {
		if h.deferTimers {
			h.timers = append(h.timers, f)
			return
		}
		f()
	}))
	deps := &screen.Deps{
		API:      h.api,
		Sessions: h.store,
		Router:   r,
		Logger:   log.NewStub(),
	}

	clock := pkgtime.NewClock()
	ctx := clock.Set(context.Background(), time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	h.model = tui.New(ctx, tui.Config{
		Screens:   screen.NewFactory(deps, screen.NewCandidateCache()),
		Router:    r,
		Sessions:  h.store,
		Observer:  observability.New(),
		Clock:     clock,
		Logger:    log.NewStub(),
		Markdown:  tui.PlainMarkdown,
		Styles:    tui.PlainStyles(),
		StartPath: start,
	})
	return h
}

func (h *harness) start() {
	h.deliver(h.exec(h.model.Init())...)
}

// deliver feeds msgs to the model and then every message its commands and
// navigations produce, until the program is idle.
func (h *harness) deliver(msgs ...tea.Msg) {
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		var cmd tea.Cmd
		h.model, cmd = h.model.Update(msg)
		queue = append(queue, h.exec(cmd)...)
		queue = append(queue, h.navigations()...)
	}
}

// update feeds msg to the model without running the commands it returns.
func (h *harness) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

func (h *harness) exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case nil, spinner.TickMsg, tea.QuitMsg:
		return nil
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, c := range msg {
			msgs = append(msgs, h.exec(c)...)
		}
		return msgs
	default:
		return []tea.Msg{msg}
	}
}

func (h *harness) navigations() []tea.Msg {
	var msgs []tea.Msg
	for {
		select {
		case msg := <-h.navigator.Messages():
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func (h *harness) fireTimers() {
	timers := h.timers
	h.timers = nil
	for _, f := range timers {
		f()
	}
	h.deliver(h.navigations()...)
}

func (h *harness) current() screen.Screen {
	return h.model.(tui.Model).Current()
}

func (h *harness) view() string {
	return h.model.View()
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func ptr[T any](v T) *T {
	return &v
}

var sender = &domain.Session{Token: "t1", Role: domain.RoleTagParcel, UserID: ptr(int64(5))}

func TestModel_ProtectedScreenRedirectsGuestToLogin(t *testing.T) {
	h := newHarness(t, nil, router.PathParcelRequests)

	h.start()

	require.IsType(t, &screen.Login{}, h.current())
	assert.Contains(t, h.view(), "Sign In")
	assert.Contains(t, h.view(), "Sign Up")
	assert.NotContains(t, h.view(), "Logout")
}

func TestModel_SenderAcceptsRequest(t *testing.T) {
	h := newHarness(t, sender, router.PathParcelRequests)
	h.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return([]domain.ParcelRequest{
		{MatchID: 1, Parcel: &domain.Parcel{ID: 10, WeightGrams: 300, Deadline: "2025-03-02"}},
		{MatchID: 2, Parcel: &domain.Parcel{ID: 11, WeightGrams: 700, Deadline: "2025-06-01"}},
	}, nil)

	h.start()

	require.IsType(t, &screen.ParcelRequests{}, h.current())
	view := h.view()
	assert.Contains(t, view, "Welcome, ROLE_PARCEL")
	assert.Contains(t, view, "Request-Received")
	assert.Contains(t, view, "Request #1")
	assert.Contains(t, view, "URGENT")
	assert.Contains(t, view, "Total: 2 · Urgent: 1 · Weight: 1000g")

	h.api.EXPECT().AcceptParcelRequest(gomock.Any(), int64(1)).Return(backend.ActionResult{Success: true}, nil)
	h.deliver(key("a"))

	view = h.view()
	assert.Contains(t, view, "Parcel request accepted successfully!")
	assert.NotContains(t, view, "Request #1")
	assert.Contains(t, view, "Request #2")
}

func TestModel_Login(t *testing.T) {
	h := newHarness(t, nil, router.PathLogin)
	h.start()
	require.IsType(t, &screen.Login{}, h.current())

	h.api.EXPECT().Login(gomock.Any(), domain.Credentials{Username: "alice", Password: "pw"}).
		Return(backend.LoginResult{Token: "t", Role: domain.RoleTagTraveler, UserID: ptr(int64(7))}, nil)

	h.deliver(key("alice"))
	h.deliver(key("enter"))
	h.deliver(key("pw"))
	assert.NotContains(t, h.view(), "pw")
	h.deliver(key("enter"))

	require.IsType(t, &screen.Home{}, h.current())
	assert.True(t, h.store.IsAuthenticated())
	view := h.view()
	assert.Contains(t, view, "Welcome, ROLE_TRAVELER")
	assert.Contains(t, view, "Suggestions")
	assert.Contains(t, view, "Logout")
}

func TestModel_SessionChangeDropsStaleResults(t *testing.T) {
	h := newHarness(t, sender, router.PathParcelRequests)
	h.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return([]domain.ParcelRequest{{MatchID: 1}}, nil)

	start := h.exec(h.model.Init())
	require.Len(t, start, 1)
	load := h.update(start[0])
	require.IsType(t, &screen.ParcelRequests{}, h.current())

	h.store.Clear(context.Background())
	h.deliver(tui.SessionChanged())
	require.IsType(t, &screen.Login{}, h.current())

	h.deliver(h.exec(load)...)
	assert.IsType(t, &screen.Login{}, h.current())
	assert.NotContains(t, h.view(), "Request #1")
}

func TestModel_Logout(t *testing.T) {
	h := newHarness(t, sender, router.PathHome)
	h.start()
	require.IsType(t, &screen.Home{}, h.current())
	assert.Contains(t, h.view(), "Welcome, ROLE_PARCEL")

	h.deliver(key("tab"))
	h.deliver(key("L"))

	require.IsType(t, &screen.Home{}, h.current())
	assert.False(t, h.store.IsAuthenticated())
	view := h.view()
	assert.Contains(t, view, "Sign In")
	assert.NotContains(t, view, "Welcome,")
}

func TestModel_NavBarOpensLink(t *testing.T) {
	h := newHarness(t, sender, router.PathHome)
	h.start()

	h.deliver(key("tab"))
	h.deliver(key("l"))
	h.deliver(key("enter"))

	require.IsType(t, &screen.AddParcel{}, h.current())
	assert.Contains(t, h.view(), "Pickup latitude")
}

func TestRenderScreen(t *testing.T) {
	h := newHarness(t, sender, router.PathHome)
	h.start()

	out := tui.RenderScreen(h.current(), *sender, tui.RenderOptions{
		Styles:   tui.PlainStyles(),
		Markdown: tui.PlainMarkdown,
		Now:      time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, out, "ParcelShare")
	assert.Contains(t, out, "Add-Parcel")
	assert.Contains(t, out, "Welcome, **ROLE_PARCEL**.")
}

func TestModel_SessionExpiredBannerStaysUntilDelayedRedirect(t *testing.T) {
	h := newHarness(t, sender, router.PathParcelRequests)
	h.deferTimers = true
	h.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return(nil, backend.ErrUnauthorized)

	h.start()

	require.IsType(t, &screen.ParcelRequests{}, h.current())
	assert.False(t, h.store.IsAuthenticated())
	assert.Contains(t, h.view(), screen.MessageSessionExpired)
	require.Len(t, h.timers, 1)

	h.deliver(tui.SessionChanged())

	require.IsType(t, &screen.ParcelRequests{}, h.current())
	assert.Contains(t, h.view(), screen.MessageSessionExpired)
	assert.Empty(t, h.navigations())

	h.fireTimers()

	require.IsType(t, &screen.Login{}, h.current())
	assert.NotContains(t, h.view(), screen.MessageSessionExpired)
	assert.Empty(t, h.timers)

	h.deliver(key("alice"))
	h.deliver(tui.SessionChanged())
	assert.Equal(t, "alice", h.current().(*screen.Login).Input.Username)
}

func TestNavigator_DropsNavigationsWhenQueueIsFull(t *testing.T) {
	n := tui.NewNavigator()
	for i := 0; i < 20; i++ {
		n.Navigate(router.PathHome)
	}

	queued := 0
	for {
		select {
		case <-n.Messages():
			queued++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 16, queued)
}
