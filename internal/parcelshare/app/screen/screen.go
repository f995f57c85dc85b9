// Package screen implements the state of every screen of the client. Screens
// are driven from a single goroutine: background work is expressed as Task
// values whose Apply results are executed back on that goroutine.
package screen

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/observability"
)

type (
	// Apply updates screen state.
	Apply func()

	// Task is background work of a mounted screen.
	Task func(ctx context.Context) Apply

	Screen interface {
		Route() router.Route
		Banner() Banner
		DismissBanner()
	}

	Sessions interface {
		Session() domain.Session
		Set(ctx context.Context, session domain.Session)
	}

	Router interface {
		Guard(ctx context.Context, route router.Route) bool
		HandleSessionExpired(ctx context.Context)
		Navigate(path string)
		NavigateAfter(delay time.Duration, path string)
	}
)

type Deps struct {
	API      backend.API
	Sessions Sessions
	Router   Router
	Logger   log.Logger
}

// Mount is the lifetime of one mounted screen.
type Mount struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool
}

func NewMount(ctx context.Context, observer observability.Observer) *Mount {
	id := observability.NewID()
	ctx = observer.WithField(ctx, observability.LogFieldMountID, id)
	ctx, cancel := context.WithCancel(ctx)

	return &Mount{
		id:     id,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (m *Mount) ID() string {
	return m.id
}

func (m *Mount) Context() context.Context {
	return m.ctx
}

// Close cancels outstanding work; results arriving later are dropped.
func (m *Mount) Close() {
	m.closed.Store(true)
	m.cancel()
}

func (m *Mount) Closed() bool {
	return m.closed.Load()
}

// Run executes task and returns its result bound to the mount lifetime.
func (m *Mount) Run(task Task) Apply {
	apply := task(m.ctx)
	return func() {
		if m.Closed() || apply == nil {
			return
		}
		apply()
	}
}

type base struct {
	deps   *Deps
	route  router.Route
	banner Banner
}

func newBase(deps *Deps, path string) base {
	return base{deps: deps, route: router.Resolve(path)}
}

func (b *base) Route() router.Route {
	return b.route
}

func (b *base) Banner() Banner {
	return b.banner
}

func (b *base) DismissBanner() {
	b.banner = Banner{}
}

func (b *base) userID() (int64, bool) {
	sess := b.deps.Sessions.Session()
	if sess.UserID == nil {
		return 0, false
	}
	return *sess.UserID, true
}

// Placeholder replaces a protected screen while redirecting to login.
type Placeholder struct {
	base
}

func (p *Placeholder) Text() string {
	return router.RedirectingPlaceholder
}
