package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	parcelsharehttp "github.com/klwxsrx/parcelshare/internal/parcelshare/infra/http"
	pkghttp "github.com/klwxsrx/parcelshare/pkg/http"
)

type staticToken string

func (t staticToken) Token() string {
	return string(t)
}

type call struct {
	method string
	path   string
	auth   string
	body   string
}

type fakeBackend struct {
	router *mux.Router
	calls  []call
}

func newFakeBackend(t *testing.T) (*fakeBackend, backend.API) {
	t.Helper()
	fake := &fakeBackend{router: mux.NewRouter()}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := pkghttp.NewClientFactory().InitClient(parcelsharehttp.Destination, server.URL)
	return fake, parcelsharehttp.NewBackend(client, staticToken("t1"))
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.calls = append(f.calls, call{
		method: r.Method,
		path:   r.URL.Path,
		auth:   r.Header.Get("Authorization"),
		body:   string(body),
	})
	f.router.ServeHTTP(w, r)
}

func (f *fakeBackend) handle(method, path string, status int, body string) {
	f.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		if len(body) > 0 && (body[0] == '{' || body[0] == '[') {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(method)
}

func (f *fakeBackend) lastCall(t *testing.T) call {
	t.Helper()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func TestBackend_Login(t *testing.T) {
	fake, api := newFakeBackend(t)
	fake.handle(http.MethodPost, "/api/auth/login", http.StatusOK, `{"token":"jwt","role":"ROLE_TRAVELER","userid":7}`)

	result, err := api.Login(context.Background(), domain.Credentials{Username: "jane", Password: "secret"})
	require.NoError(t, err)

	userID := int64(7)
	assert.Equal(t, backend.LoginResult{Token: "jwt", Role: domain.RoleTagTraveler, UserID: &userID}, result)
	c := fake.lastCall(t)
	assert.Empty(t, c.auth)
	assert.JSONEq(t, `{"username":"jane","password":"secret"}`, c.body)
}

func TestBackend_LoginFailureCarriesServerMessage(t *testing.T) {
	fake, api := newFakeBackend(t)
	fake.handle(http.MethodPost, "/api/auth/login", http.StatusUnauthorized, `{"message":"Bad credentials"}`)

	_, err := api.Login(context.Background(), domain.Credentials{Username: "jane", Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Equal(t, "Bad credentials", backend.ServerMessage(err))
}

func TestBackend_Register(t *testing.T) {
	fake, api := newFakeBackend(t)
	fake.handle(http.MethodPost, "/api/auth/register", http.StatusBadRequest, "Username already exists")

	_, err := api.Register(context.Background(), domain.Registration{
		Name:     "Jane",
		Email:    "jane@example.com",
		Username: "jane",
		Password: "secret",
		Role:     domain.RoleTagParcel,
	})
	assert.Equal(t, "Username already exists", backend.ServerMessage(err))
	assert.JSONEq(t,
		`{"name":"Jane","email":"jane@example.com","username":"jane","password":"secret","role":"ROLE_PARCEL"}`,
		fake.lastCall(t).body,
	)
}

func TestBackend_AddParcel(t *testing.T) {
	fake, api := newFakeBackend(t)
	fake.handle(http.MethodPost, "/api/service/addparcel", http.StatusOK, "Parcel saved")

	text, err := api.AddParcel(context.Background(), domain.NewParcel{
		Pickup:          domain.Point{Lat: 28.5, Lng: 77.25},
		Destination:     domain.Point{Lat: 19, Lng: 72.5},
		WeightGrams:     1200,
		PickupDate:      "2025-01-08",
		DestinationDate: "2025-01-09",
		Deadline:        "2025-01-10",
		Description:     "books",
		CreatorID:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Parcel saved", text)

	c := fake.lastCall(t)
	assert.Equal(t, "Bearer t1", c.auth)
	assert.JSONEq(t, `{
		"pickupLat": 28.5, "pickupLng": 77.25,
		"destinationLat": 19, "destinationLng": 72.5,
		"weight": 1200,
		"pickupDate": "2025-01-08", "destinationDate": "2025-01-09", "deadline": "2025-01-10",
		"description": "books",
		"parcelcreaterid": 5
	}`, c.body)
}

func TestBackend_AddTravelPlan(t *testing.T) {
	fake, api := newFakeBackend(t)
	fake.handle(http.MethodPost, "/api/service/addtraveler", http.StatusForbidden, "")

	_, err := api.AddTravelPlan(context.Background(), domain.NewTravelPlan{CapacityGrams: 5000, CreatorID: 7})
	assert.ErrorIs(t, err, backend.ErrForbidden)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.lastCall(t).body), &body))
	assert.Equal(t, float64(5000), body["weight"])
	assert.Equal(t, float64(7), body["travelercreatorid"])
}

func TestBackend_Lists(t *testing.T) {
	fake, api := newFakeBackend(t)
	parcel := `{"id":10,"pickupLat":1.5,"pickupLng":2.5,"destinationLat":3.5,"destinationLng":4.5,"weight":300,` +
		`"pickupDate":"2025-01-08","destinationDate":"2025-01-09","deadline":"2025-01-10","description":"books",` +
		`"status":"PENDING","parcelcreaterid":5}`
	plan := `{"id":3,"originLat":1,"originLng":2,"destinationLat":3,"destinationLng":4,"originDate":"2025-01-08",` +
		`"destinationDate":"2025-01-09","weight":5000,"status":"ACTIVE","travelercreatorid":7}`

	fake.handle(http.MethodPost, "/api/service/algo/traveler/3/7", http.StatusOK, "["+parcel+"]")
	fake.handle(http.MethodPost, "/api/pmc/alltraveler/7", http.StatusOK, "["+plan+"]")
	fake.handle(http.MethodGet, "/api/pmc/trequest/7", http.StatusOK, "["+parcel+"]")
	fake.handle(http.MethodGet, "/api/pmc/tmatched/7", http.StatusOK, `[{"id":1,"parcel":`+parcel+`}]`)
	fake.handle(http.MethodGet, "/api/pmc/prequest/5", http.StatusOK, `[{"parcelmatchid":4,"parcel":`+parcel+`,"traveler":`+plan+`}]`)
	fake.handle(http.MethodGet, "/api/pmc/parequest/5", http.StatusOK, `null`)
	fake.handle(http.MethodGet, "/api/pmc/pmatched/5", http.StatusOK, `[{"id":2,"parcel":`+parcel+`,"Parcels":`+plan+`}]`)

	ctx := context.Background()
	creatorID, travelerID := int64(5), int64(7)
	expectParcel := domain.Parcel{
		ID:              10,
		Pickup:          domain.Point{Lat: 1.5, Lng: 2.5},
		Destination:     domain.Point{Lat: 3.5, Lng: 4.5},
		WeightGrams:     300,
		PickupDate:      "2025-01-08",
		DestinationDate: "2025-01-09",
		Deadline:        "2025-01-10",
		Description:     "books",
		Status:          domain.StatusPending,
		CreatorID:       &creatorID,
	}
	expectPlan := domain.TravelPlan{
		ID:              3,
		Origin:          domain.Point{Lat: 1, Lng: 2},
		Destination:     domain.Point{Lat: 3, Lng: 4},
		OriginDate:      "2025-01-08",
		DestinationDate: "2025-01-09",
		CapacityGrams:   5000,
		Status:          domain.StatusActive,
		CreatorID:       &travelerID,
	}

	candidates, err := api.TravelerCandidates(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.Parcel{expectParcel}, candidates)

	plans, err := api.AllTravelPlans(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.TravelPlan{expectPlan}, plans)

	requested, err := api.TravelerRequests(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.Parcel{expectParcel}, requested)

	tMatches, err := api.TravelerMatches(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.TravelerMatch{{ID: 1, Parcel: &expectParcel}}, tMatches)

	requests, err := api.ParcelRequests(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.ParcelRequest{{MatchID: 4, Parcel: &expectParcel, Traveler: &expectPlan}}, requests)

	accepted, err := api.AcceptedParcelRequests(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, accepted)

	pMatches, err := api.ParcelMatches(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.ParcelMatch{{ID: 2, Parcel: &expectParcel, Traveler: &expectPlan}}, pMatches)

	for _, c := range fake.calls {
		assert.Equal(t, "Bearer t1", c.auth, c.path)
	}
}

func TestBackend_Actions(t *testing.T) {
	fake, api := newFakeBackend(t)
	fake.handle(http.MethodPost, "/api/pmc/updatepaccept/4", http.StatusOK, "ACCEPTED SUCCESSFULLY")
	fake.handle(http.MethodPost, "/api/pmc/updatepreject/4", http.StatusOK, "FAILED: reason")
	fake.handle(http.MethodPost, "/api/pmc/updatetaccept/10/7", http.StatusOK, "PARCEL ACCEPTED SUCCESSFULLY")
	fake.handle(http.MethodPost, "/api/pmc/updatetreject/10/7", http.StatusUnauthorized, "")

	ctx := context.Background()

	result, err := api.AcceptParcelRequest(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, backend.ActionResult{Success: true, Message: "ACCEPTED SUCCESSFULLY"}, result)

	result, err = api.RejectParcelRequest(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, backend.ActionResult{Success: false, Message: "FAILED: reason"}, result)

	result, err = api.TravelerAccept(ctx, 10, 7)
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = api.TravelerReject(ctx, 10, 7)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestBackend_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	api := parcelsharehttp.NewBackend(
		pkghttp.NewClientFactory().InitClient(parcelsharehttp.Destination, url),
		staticToken("t1"),
	)

	_, err := api.ParcelRequests(context.Background(), 5)
	assert.ErrorIs(t, err, backend.ErrNetwork)
	assert.NotErrorIs(t, err, backend.ErrUnauthorized)
}

func TestBackend_CancelledContext(t *testing.T) {
	_, api := newFakeBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.TravelerMatches(ctx, 7)
	assert.ErrorIs(t, err, context.Canceled)
}
