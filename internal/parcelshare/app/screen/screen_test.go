package screen_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	backendmock "github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend/mock"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	routermock "github.com/klwxsrx/parcelshare/internal/parcelshare/app/router/mock"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/session"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/pkg/kv"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type env struct {
	api       *backendmock.API
	navigator *routermock.Navigator
	store     *session.Store
	deps      *screen.Deps
	mount     *screen.Mount
	delays    []time.Duration
}

func newEnv(t *testing.T, sess *domain.Session) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	e := &env{
		api:       backendmock.NewAPI(ctrl),
		navigator: routermock.NewNavigator(ctrl),
		store:     session.NewStore(kv.NewMemory(), log.NewStub()),
	}
	if sess != nil {
		e.store.Set(context.Background(), *sess)
	}

	r := router.New(e.store, e.navigator, log.NewStub(), router.WithAfterFunc(func(d time.Duration, f func()) {
		e.delays = append(e.delays, d)
		f()
	}))
	e.deps = &screen.Deps{
		API:      e.api,
		Sessions: e.store,
		Router:   r,
		Logger:   log.NewStub(),
	}
	e.mount = screen.NewMount(context.Background(), observability.New())
	t.Cleanup(e.mount.Close)
	return e
}

func (e *env) run(tasks ...screen.Task) {
	for _, task := range tasks {
		if task != nil {
			e.mount.Run(task)()
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

var (
	sender   = &domain.Session{Token: "t1", Role: domain.RoleTagParcel, UserID: ptr(int64(5))}
	traveler = &domain.Session{Token: "t2", Role: domain.RoleTagTraveler, UserID: ptr(int64(7))}
)

func TestFactory_Open_ProtectedWithoutSessionRedirects(t *testing.T) {
	for _, route := range router.Routes() {
		if !route.Protected {
			continue
		}
		t.Run(route.Path, func(t *testing.T) {
			e := newEnv(t, nil)
			e.navigator.EXPECT().Redirect(router.PathLogin)

			s, tasks := screen.NewFactory(e.deps, screen.NewCandidateCache()).Open(e.mount.Context(), route.Path)

			require.IsType(t, &screen.Placeholder{}, s)
			assert.Equal(t, router.RedirectingPlaceholder, s.(*screen.Placeholder).Text())
			assert.Empty(t, tasks)
		})
	}
}

func TestFactory_Open_PublicScreens(t *testing.T) {
	e := newEnv(t, nil)
	factory := screen.NewFactory(e.deps, screen.NewCandidateCache())

	s, tasks := factory.Open(e.mount.Context(), "/signup")
	assert.IsType(t, &screen.Signup{}, s)
	assert.Empty(t, tasks)

	s, _ = factory.Open(e.mount.Context(), "/unknown")
	assert.IsType(t, &screen.Home{}, s)
	assert.Contains(t, s.(*screen.Home).Markdown(), "**Sign In**")
}

func TestParcelRequests_Load(t *testing.T) {
	requests := []domain.ParcelRequest{
		{MatchID: 1, Parcel: &domain.Parcel{ID: 10, WeightGrams: 300, Deadline: "2000-01-01"}},
		{MatchID: 2, Parcel: &domain.Parcel{ID: 11, WeightGrams: 700, Deadline: "2999-01-01"}},
	}
	tests := []struct {
		name         string
		err          error
		expectBanner string
		expectItems  int
		expectLogout bool
	}{
		{name: "success", expectItems: 2},
		{
			name:         "session_expired",
			err:          fmt.Errorf("request pmc.prequest: %w", backend.ErrUnauthorized),
			expectBanner: "Session expired. Please log in again.",
			expectLogout: true,
		},
		{
			name:         "forbidden",
			err:          backend.ErrForbidden,
			expectBanner: "Access denied. You need PARCEL role to view this page.",
		},
		{
			name:         "generic",
			err:          errors.New("boom"),
			expectBanner: "Failed to load parcel requests. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, sender)
			e.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return(requests, nil)
			if tt.expectLogout {
				e.navigator.EXPECT().Redirect(router.PathLogin)
			}

			s := screen.NewParcelRequests(e.deps)
			e.run(s.Init()...)
			require.Len(t, s.Items(), 2)

			e.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return(nil, tt.err)
			task := s.Reload()
			assert.True(t, s.Loading())
			e.run(task)

			assert.False(t, s.Loading())
			assert.Equal(t, tt.expectBanner, s.Banner().Text)
			if tt.err == nil {
				assert.Len(t, s.Items(), 0)
				return
			}
			assert.Empty(t, s.Items())
			assert.Equal(t, !tt.expectLogout, e.store.IsAuthenticated())
			if tt.expectLogout {
				assert.Equal(t, []time.Duration{router.SessionExpiredRedirectDelay}, e.delays)
			}
		})
	}
}

func TestParcelRequests_Summary(t *testing.T) {
	e := newEnv(t, sender)
	e.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return([]domain.ParcelRequest{
		{MatchID: 1, Parcel: &domain.Parcel{WeightGrams: 300, Deadline: "2025-01-02"}},
		{MatchID: 2, Parcel: &domain.Parcel{WeightGrams: 700, Deadline: "2025-02-01"}},
		{MatchID: 3},
	}, nil)

	s := screen.NewParcelRequests(e.deps)
	e.run(s.Init()...)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, screen.Summary{Total: 3, Urgent: 1, WeightGrams: 1000}, s.Summary(now))
}

func TestParcelRequests_Accept(t *testing.T) {
	tests := []struct {
		name         string
		result       backend.ActionResult
		err          error
		expectItems  []int64
		expectBanner screen.Banner
	}{
		{
			name:         "success_removes_item",
			result:       backend.ParseActionText("ACCEPTED SUCCESSFULLY"),
			expectItems:  []int64{2},
			expectBanner: screen.Banner{Kind: screen.BannerSuccess, Text: "Parcel request accepted successfully!"},
		},
		{
			name:         "failure_text_keeps_item",
			result:       backend.ParseActionText("FAILED: reason"),
			expectItems:  []int64{1, 2},
			expectBanner: screen.Banner{Kind: screen.BannerError, Text: "Failed to accept request: FAILED: reason"},
		},
		{
			name:         "transport_error_keeps_item",
			err:          fmt.Errorf("request: %w", backend.ErrNetwork),
			expectItems:  []int64{1, 2},
			expectBanner: screen.Banner{Kind: screen.BannerError, Text: "Error accepting request. Please try again."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, sender)
			e.api.EXPECT().ParcelRequests(gomock.Any(), int64(5)).Return([]domain.ParcelRequest{{MatchID: 1}, {MatchID: 2}}, nil)
			e.api.EXPECT().AcceptParcelRequest(gomock.Any(), int64(1)).Return(tt.result, tt.err)

			s := screen.NewParcelRequests(e.deps)
			e.run(s.Init()...)

			task := s.Accept(1)
			assert.True(t, s.IsProcessing(1))
			assert.Nil(t, s.Accept(1))
			assert.Nil(t, s.Accept(2))
			e.run(task)

			assert.False(t, s.Busy())
			ids := make([]int64, 0)
			for _, item := range s.Items() {
				ids = append(ids, item.MatchID)
			}
			assert.Equal(t, tt.expectItems, ids)
			assert.Equal(t, tt.expectBanner, s.Banner())
		})
	}
}

func TestParcelAccepted_Reject(t *testing.T) {
	e := newEnv(t, sender)
	e.api.EXPECT().AcceptedParcelRequests(gomock.Any(), int64(5)).Return([]domain.ParcelRequest{{MatchID: 4}}, nil)
	e.api.EXPECT().RejectParcelRequest(gomock.Any(), int64(4)).Return(backend.ParseActionText("REJECTED SUCCESSFULLY"), nil)

	s := screen.NewParcelAccepted(e.deps)
	e.run(s.Init()...)
	s.Toggle(4)
	assert.True(t, s.IsExpanded(4))

	e.run(s.Reject(4))
	assert.Empty(t, s.Items())
	assert.False(t, s.IsExpanded(4))
	assert.Equal(t, "Request rejected successfully!", s.Banner().Text)

	s.DismissBanner()
	assert.False(t, s.Banner().Visible())
}

func TestList_ResultsOfClosedMountAreDropped(t *testing.T) {
	e := newEnv(t, traveler)
	started := make(chan struct{})
	e.api.EXPECT().TravelerMatches(gomock.Any(), int64(7)).
		DoAndReturn(func(ctx context.Context, _ int64) ([]domain.TravelerMatch, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	s := screen.NewTravelerMatched(e.deps)
	tasks := s.Init()
	require.Len(t, tasks, 1)

	applied := make(chan screen.Apply)
	go func() {
		applied <- e.mount.Run(tasks[0])
	}()

	<-started
	e.mount.Close()
	(<-applied)()

	assert.True(t, s.Loading())
	assert.False(t, s.Banner().Visible())
}

func TestList_NoUserID(t *testing.T) {
	e := newEnv(t, &domain.Session{Token: "t3", Role: domain.RoleTagTraveler})

	s := screen.NewTravelerAll(e.deps)
	assert.Empty(t, s.Init())
	assert.Nil(t, s.Reload())
	assert.Equal(t, screen.MessageNoUserID, s.Banner().Text)
}

func TestTravelerSuggestions_Candidates(t *testing.T) {
	cache := screen.NewCandidateCache()
	e := newEnv(t, traveler)
	e.api.EXPECT().AllTravelPlans(gomock.Any(), int64(7)).Return([]domain.TravelPlan{{ID: 3}}, nil).Times(2)
	e.api.EXPECT().TravelerCandidates(gomock.Any(), int64(3), int64(7)).
		Return([]domain.Parcel{{ID: 10}, {ID: 11}}, nil).
		Times(1)
	e.api.EXPECT().TravelerAccept(gomock.Any(), int64(10), int64(7)).
		Return(backend.ParseActionText("PARCEL ACCEPTED SUCCESSFULLY"), nil)

	s := screen.NewTravelerSuggestions(e.deps, cache)
	e.run(s.Init()...)

	task := s.Expand(3)
	assert.True(t, s.FetchingCandidates(3))
	assert.Nil(t, s.Expand(3))
	assert.False(t, s.IsExpanded(3))
	assert.Nil(t, s.Expand(3))
	e.run(task)

	parcels, ok := s.Candidates(3)
	require.True(t, ok)
	assert.Len(t, parcels, 2)

	s.Expand(3)
	assert.Nil(t, s.Expand(3))

	e.run(s.Accept(10, 3))
	parcels, _ = s.Candidates(3)
	assert.Equal(t, []domain.Parcel{{ID: 11}}, parcels)
	assert.Equal(t, "Parcel accepted successfully!", s.Banner().Text)

	again := screen.NewTravelerSuggestions(e.deps, cache)
	e.run(again.Init()...)
	assert.Nil(t, again.Expand(3))
	parcels, _ = again.Candidates(3)
	assert.Equal(t, []domain.Parcel{{ID: 11}}, parcels)
}

func TestTravelerSuggestions_FailedCandidatesAreRetried(t *testing.T) {
	e := newEnv(t, traveler)
	e.api.EXPECT().AllTravelPlans(gomock.Any(), int64(7)).Return([]domain.TravelPlan{{ID: 3}}, nil)
	gomock.InOrder(
		e.api.EXPECT().TravelerCandidates(gomock.Any(), int64(3), int64(7)).Return(nil, errors.New("connection reset")),
		e.api.EXPECT().TravelerCandidates(gomock.Any(), int64(3), int64(7)).Return([]domain.Parcel{{ID: 10}}, nil),
	)

	s := screen.NewTravelerSuggestions(e.deps, screen.NewCandidateCache())
	e.run(s.Init()...)

	e.run(s.Expand(3))
	_, ok := s.Candidates(3)
	assert.False(t, ok)
	assert.False(t, s.FetchingCandidates(3))

	assert.Nil(t, s.Expand(3))
	retry := s.Expand(3)
	require.NotNil(t, retry)
	e.run(retry)

	parcels, ok := s.Candidates(3)
	require.True(t, ok)
	assert.Equal(t, []domain.Parcel{{ID: 10}}, parcels)
}

func TestTravelerRequests_Reject(t *testing.T) {
	e := newEnv(t, traveler)
	e.api.EXPECT().TravelerRequests(gomock.Any(), int64(7)).Return([]domain.Parcel{{ID: 1, WeightGrams: 5}, {ID: 2, WeightGrams: 6}}, nil)
	e.api.EXPECT().TravelerReject(gomock.Any(), int64(2), int64(7)).Return(backend.ParseActionText("REJECTED SUCCESSFULLY"), nil)

	s := screen.NewTravelerRequests(e.deps)
	e.run(s.Init()...)
	assert.Equal(t, 11, s.Summary(time.Now()).WeightGrams)

	e.run(s.Reject(2))
	assert.Equal(t, []domain.Parcel{{ID: 1, WeightGrams: 5}}, s.Items())
}

func TestParcelMatched_CountByStatus(t *testing.T) {
	e := newEnv(t, sender)
	e.api.EXPECT().ParcelMatches(gomock.Any(), int64(5)).Return([]domain.ParcelMatch{
		{ID: 1, Parcel: &domain.Parcel{Status: domain.StatusMatched}},
		{ID: 2, Parcel: &domain.Parcel{Status: domain.StatusDelivered}},
		{ID: 3},
	}, nil)

	s := screen.NewParcelMatched(e.deps)
	e.run(s.Init()...)

	assert.Equal(t, 1, s.CountByStatus(domain.StatusMatched))
	assert.Equal(t, 1, s.CountByStatus(domain.StatusDelivered))
}

func TestLogin_Submit(t *testing.T) {
	tests := []struct {
		name         string
		result       backend.LoginResult
		err          error
		expectBanner string
		expectLogin  bool
	}{
		{
			name:        "success",
			result:      backend.LoginResult{Token: "t9", Role: domain.RoleTagCarrier, UserID: ptr(int64(9))},
			expectLogin: true,
		},
		{
			name:         "no_token",
			result:       backend.LoginResult{Role: domain.RoleTagParcel},
			expectBanner: "Invalid response from server - no token received",
		},
		{
			name:         "server_message",
			err:          &backend.ServerError{StatusCode: 401, Message: "Bad credentials"},
			expectBanner: "Bad credentials",
		},
		{
			name:         "fallback_message",
			err:          backend.ErrNetwork,
			expectBanner: "Login failed. Please check your credentials.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, nil)
			credentials := domain.Credentials{Username: "jane", Password: "secret"}
			e.api.EXPECT().Login(gomock.Any(), credentials).Return(tt.result, tt.err)
			if tt.expectLogin {
				e.navigator.EXPECT().Navigate(router.PathHome)
			}

			s := screen.NewLogin(e.deps)
			*s.Fields()[0].Value = "jane"
			*s.Fields()[1].Value = "secret"
			e.run(s.Submit())

			assert.False(t, s.Submitting())
			assert.Equal(t, tt.expectBanner, s.Banner().Text)
			assert.Equal(t, tt.expectLogin, e.store.IsAuthenticated())
			if tt.expectLogin {
				assert.Equal(t, domain.Session{Token: "t9", Role: domain.RoleTagCarrier, UserID: ptr(int64(9))}, e.store.Session())
			}
		})
	}
}

func TestSignup_Submit(t *testing.T) {
	e := newEnv(t, nil)
	s := screen.NewSignup(e.deps)
	assert.Equal(t, domain.RoleTagParcel, s.Input.Role)

	assert.Nil(t, s.Submit())
	assert.Equal(t, "Full name is required", s.Banner().Text)

	s.Input = domain.Registration{
		Name:            "Jane",
		Email:           "jane@example.com",
		Username:        "jane",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
	s.SelectRole(domain.RoleTagTraveler)

	e.api.EXPECT().Register(gomock.Any(), s.Input).Return("User registered", nil)
	e.navigator.EXPECT().Navigate(router.PathLogin)
	e.run(s.Submit())

	assert.Equal(t, screen.Banner{Kind: screen.BannerSuccess, Text: "Account created successfully! Redirecting to login..."}, s.Banner())
	assert.Equal(t, []time.Duration{screen.SignupRedirectDelay}, e.delays)
	assert.Empty(t, s.Input.Username)
}

func TestSignup_SubmitFailure(t *testing.T) {
	e := newEnv(t, nil)
	s := screen.NewSignup(e.deps)
	s.Input = domain.Registration{
		Name:            "Jane",
		Email:           "jane@example.com",
		Username:        "jane",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            domain.RoleTagParcel,
	}

	e.api.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", &backend.ServerError{StatusCode: 400, Message: "Username already exists"})
	e.run(s.Submit())
	assert.Equal(t, "Username already exists", s.Banner().Text)

	e.api.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("post: %w", backend.ErrNetwork))
	e.run(s.Submit())
	assert.Equal(t, "Network error. Please check your connection and try again.", s.Banner().Text)
	assert.Equal(t, "jane", s.Input.Username)
}

func TestAddParcel_Submit(t *testing.T) {
	e := newEnv(t, sender)
	s := screen.NewAddParcel(e.deps)
	values := map[string]string{
		"pickupLat":       "28.6",
		"pickupLng":       "77.2",
		"destinationLat":  "19.0",
		"destinationLng":  "72.8",
		"weight":          "1500",
		"pickupDate":      "2025-01-08",
		"destinationDate": "2025-01-09",
		"deadline":        "2025-01-10",
		"description":     "books",
	}
	for _, field := range s.Fields() {
		*field.Value = values[field.Key]
	}

	e.api.EXPECT().AddParcel(gomock.Any(), domain.NewParcel{
		Pickup:          domain.Point{Lat: 28.6, Lng: 77.2},
		Destination:     domain.Point{Lat: 19.0, Lng: 72.8},
		WeightGrams:     1500,
		PickupDate:      "2025-01-08",
		DestinationDate: "2025-01-09",
		Deadline:        "2025-01-10",
		Description:     "books",
		CreatorID:       5,
	}).Return("Parcel saved", nil)

	e.run(s.Submit())
	assert.Equal(t, "Parcel added successfully!", s.Banner().Text)
	assert.Equal(t, domain.ParcelForm{}, s.Input)
}

func TestAddTravelPlan_Submit(t *testing.T) {
	tests := []struct {
		name         string
		capacity     string
		err          error
		expectBanner string
		expectCall   bool
	}{
		{name: "invalid_number_is_not_sent", capacity: "lots", expectBanner: "weight must be a whole number"},
		{name: "forbidden", capacity: "100", err: backend.ErrForbidden, expectCall: true,
			expectBanner: "Access denied. You need TRAVELER role to add travel plans."},
		{name: "server_message", capacity: "100", err: &backend.ServerError{StatusCode: 500, Message: "Plan overlaps"}, expectCall: true,
			expectBanner: "Plan overlaps"},
		{name: "generic", capacity: "100", err: errors.New("boom"), expectCall: true,
			expectBanner: "Failed to add travel plan. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, traveler)
			s := screen.NewAddTravelPlan(e.deps)
			s.Input = domain.TravelPlanForm{
				OriginLat:       "1",
				OriginLng:       "2",
				DestinationLat:  "3",
				DestinationLng:  "4",
				OriginDate:      "2025-01-08",
				DestinationDate: "2025-01-09",
				Capacity:        tt.capacity,
			}
			if tt.expectCall {
				e.api.EXPECT().AddTravelPlan(gomock.Any(), gomock.Any()).Return("", tt.err)
			}

			e.run(s.Submit())
			assert.Equal(t, tt.expectBanner, s.Banner().Text)
			assert.Equal(t, tt.capacity, s.Input.Capacity)
		})
	}
}

func TestHome_Markdown(t *testing.T) {
	e := newEnv(t, traveler)
	home := screen.NewHome(e.deps)
	assert.Contains(t, home.Markdown(), "Welcome, **ROLE_TRAVELER**")
	assert.Contains(t, home.Markdown(), "**Suggestions**")
}
