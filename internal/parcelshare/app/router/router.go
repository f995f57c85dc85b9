//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Navigator=Navigator,Sessions=Sessions"
package router

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/metric"
)

const (
	SessionExpiredRedirectDelay = 2000 * time.Millisecond

	RedirectingPlaceholder = "Redirecting to login..."
)

type (
	// Navigator changes the mounted screen. Navigate swaps screens keeping
	// the process state; Redirect tears the current screen down and reloads
	// the session from storage before mounting the target.
	Navigator interface {
		Navigate(path string)
		Redirect(path string)
	}

	Sessions interface {
		IsAuthenticated() bool
		Role() domain.Role
		Clear(ctx context.Context)
	}

	Option func(*Router)
)

// WithAfterFunc replaces the timer used for delayed redirects.
func WithAfterFunc(afterFunc func(time.Duration, func())) Option {
	return func(r *Router) {
		r.afterFunc = afterFunc
	}
}

func WithMetrics(metrics metric.Metrics) Option {
	return func(r *Router) {
		r.metrics = metrics
	}
}

type Router struct {
	sessions  Sessions
	navigator Navigator
	logger    log.Logger
	metrics   metric.Metrics
	afterFunc func(time.Duration, func())

	expiryPending atomic.Bool
}

func New(sessions Sessions, navigator Navigator, logger log.Logger, opts ...Option) *Router {
	r := &Router{
		sessions:  sessions,
		navigator: navigator,
		logger:    logger,
		metrics:   metric.NewStub(),
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Router) Chrome() Chrome {
	return SelectChrome(r.sessions.IsAuthenticated(), r.sessions.Role())
}

// Guard reports whether route may be mounted. For a protected route without
// a session it redirects to the login screen, and the caller must render
// RedirectingPlaceholder instead of fetching data.
func (r *Router) Guard(ctx context.Context, route Route) bool {
	if !route.Protected || r.sessions.IsAuthenticated() {
		return true
	}

	r.logger.WithField("path", route.Path).Info(ctx, "not authenticated, redirecting to login")
	r.navigator.Redirect(PathLogin)
	return false
}

func (r *Router) Logout(ctx context.Context) {
	r.sessions.Clear(ctx)
	r.logger.Info(ctx, "logged out")
	r.navigator.Redirect(PathHome)
}

// HandleSessionExpired drops the session the backend rejected and redirects
// to the login screen once SessionExpiredRedirectDelay has passed.
// Only one redirect is scheduled however many calls are rejected meanwhile.
func (r *Router) HandleSessionExpired(ctx context.Context) {
	r.sessions.Clear(ctx)
	if !r.expiryPending.CompareAndSwap(false, true) {
		return
	}
	r.metrics.Increment("session_expired_total")
	r.logger.Warn(ctx, "session expired")

	r.afterFunc(SessionExpiredRedirectDelay, func() {
		r.expiryPending.Store(false)
		r.navigator.Redirect(PathLogin)
	})
}

// ExpiryRedirectPending reports whether a session expired redirect is
// scheduled but has not happened yet.
func (r *Router) ExpiryRedirectPending() bool {
	return r.expiryPending.Load()
}

// NavigateAfter performs a client side navigation once delay has passed.
func (r *Router) NavigateAfter(delay time.Duration, path string) {
	r.afterFunc(delay, func() {
		r.navigator.Navigate(path)
	})
}

func (r *Router) Navigate(path string) {
	r.navigator.Navigate(path)
}
