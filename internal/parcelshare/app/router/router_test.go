package router_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	routermock "github.com/klwxsrx/parcelshare/internal/parcelshare/app/router/mock"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/session"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/pkg/kv"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/metric"
)

func TestSelectChrome(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		role          domain.Role
		expect        router.Chrome
	}{
		{name: "guest_ignores_role", authenticated: false, role: domain.RoleTagParcel, expect: router.ChromeGuest},
		{name: "guest_without_role", authenticated: false, role: "", expect: router.ChromeGuest},
		{name: "role_parcel", authenticated: true, role: domain.RoleTagParcel, expect: router.ChromeSender},
		{name: "sender", authenticated: true, role: domain.RoleTagSender, expect: router.ChromeSender},
		{name: "role_traveler", authenticated: true, role: domain.RoleTagTraveler, expect: router.ChromeTraveler},
		{name: "carrier", authenticated: true, role: domain.RoleTagCarrier, expect: router.ChromeTraveler},
		{name: "default_role", authenticated: true, role: domain.DefaultRoleTag, expect: router.ChromeGuest},
		{name: "unknown_role", authenticated: true, role: "ADMIN", expect: router.ChromeGuest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, router.SelectChrome(tt.authenticated, tt.role))
		})
	}
}

func TestChrome_Links(t *testing.T) {
	assert.Equal(t, []router.Link{
		{Title: "Sign In", Path: router.PathLogin},
		{Title: "Sign Up", Path: router.PathSignup},
	}, router.ChromeGuest.Links())
	assert.False(t, router.ChromeGuest.HasLogout())

	assert.Len(t, router.ChromeSender.Links(), 5)
	assert.Len(t, router.ChromeTraveler.Links(), 6)
	assert.True(t, router.ChromeTraveler.HasLogout())

	for _, chrome := range []router.Chrome{router.ChromeGuest, router.ChromeSender, router.ChromeTraveler} {
		for _, link := range chrome.Links() {
			assert.Equal(t, link.Path, router.Resolve(link.Path).Path, "%s links to unknown path", chrome)
		}
	}
}

func TestResolve(t *testing.T) {
	assert.Len(t, router.Routes(), 12)
	assert.Equal(t, router.ScreenTravelerAll, router.Resolve("/traveler-all").Screen)
	assert.Equal(t, router.ScreenLogin, router.Resolve("login").Screen)
	assert.Equal(t, router.ScreenParcelRequests, router.Resolve("/suggestion/?x=1").Screen)
	assert.Equal(t, router.ScreenHome, router.Resolve("/nope").Screen)
	assert.Equal(t, router.ScreenHome, router.Resolve("").Screen)
	assert.False(t, router.Resolve("/signup").Protected)
	assert.True(t, router.Resolve("/parcel-matched").Protected)
}

func immediately(_ time.Duration, f func()) {
	f()
}

func TestRouter_Guard(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		expect        bool
		redirect      bool
	}{
		{name: "public_without_session", path: router.PathHome, expect: true},
		{name: "login_without_session", path: router.PathLogin, expect: true},
		{name: "protected_with_session", path: router.PathTravelerAll, authenticated: true, expect: true},
		{name: "protected_without_session", path: router.PathAddParcel, expect: false, redirect: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := routermock.NewSessions(ctrl)
			sessions.EXPECT().IsAuthenticated().Return(tt.authenticated).AnyTimes()
			navigator := routermock.NewNavigator(ctrl)
			if tt.redirect {
				navigator.EXPECT().Redirect(router.PathLogin)
			}

			r := router.New(sessions, navigator, log.NewStub())
			assert.Equal(t, tt.expect, r.Guard(context.Background(), router.Resolve(tt.path)))
		})
	}
}

func TestRouter_Logout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := session.NewStore(kv.NewMemory(), log.NewStub())
	store.Set(ctx, domain.Session{Token: "t1", Role: domain.RoleTagParcel})

	navigator := routermock.NewNavigator(ctrl)
	navigator.EXPECT().Redirect(router.PathHome)

	r := router.New(store, navigator, log.NewStub())
	assert.Equal(t, router.ChromeSender, r.Chrome())

	r.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, router.ChromeGuest, r.Chrome())
}

func TestRouter_HandleSessionExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := session.NewStore(kv.NewMemory(), log.NewStub())
	store.Set(ctx, domain.Session{Token: "t1", Role: domain.RoleTagTraveler})

	var scheduled []time.Duration
	var pending []func()
	afterFunc := func(d time.Duration, f func()) {
		scheduled = append(scheduled, d)
		pending = append(pending, f)
	}

	navigator := routermock.NewNavigator(ctrl)
	registry := metric.NewRegistry("parcelshare")
	r := router.New(store, navigator, log.NewStub(),
		router.WithAfterFunc(afterFunc),
		router.WithMetrics(registry.Metrics()),
	)

	r.HandleSessionExpired(ctx)
	r.HandleSessionExpired(ctx)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, []time.Duration{2 * time.Second}, scheduled)
	assert.True(t, r.ExpiryRedirectPending())

	navigator.EXPECT().Redirect(router.PathLogin)
	pending[0]()
	assert.False(t, r.ExpiryRedirectPending())

	r.HandleSessionExpired(ctx)
	assert.Len(t, scheduled, 2)
}

func TestRouter_NavigateAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := routermock.NewNavigator(ctrl)
	navigator.EXPECT().Navigate(router.PathLogin)

	r := router.New(session.NewStore(kv.NewMemory(), log.NewStub()), navigator, log.NewStub(),
		router.WithAfterFunc(immediately),
	)
	r.NavigateAfter(2*time.Second, router.PathLogin)
}
