package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/parcelshare/pkg/http"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/metric"
	"github.com/klwxsrx/parcelshare/pkg/observability"
)

func TestClient_SendsRouteWithHeadersAndParsesJSON(t *testing.T) {
	var gotPath, gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(pkghttp.DefaultRequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer server.Close()

	observer := observability.New()
	registry := metric.NewRegistry("test")
	factory := pkghttp.NewClientFactory(
		pkghttp.WithRequestObservability(observer, pkghttp.DefaultRequestIDHeader),
		pkghttp.WithRequestLogging(log.NewStub(), log.LevelInfo, log.LevelWarn),
		pkghttp.WithRequestMetrics(registry.Metrics()),
	)
	client := factory.InitClient("backend", server.URL)

	ctx := observer.WithRequestID(context.Background(), "req-1")
	resp, err := client.NewRequest(ctx, pkghttp.Route{Method: http.MethodGet, URL: "/api/pmc/prequest/{userID}"}).
		SetPathParam("userID", "7").
		SetAuthToken("t1").
		Send()
	require.NoError(t, err)

	items, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]struct {
		ID int64 `json:"id"`
	}](), nil)
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, "/api/pmc/prequest/7", gotPath)
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.Equal(t, "req-1", gotRequestID)

	families, err := registry.Gatherer().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "test_http_client_request_duration_seconds", families[0].GetName())
}

func TestClient_GeneratesRequestIDWhenMissing(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(pkghttp.DefaultRequestIDHeader)
		_, _ = w.Write([]byte("ACCEPTED SUCCESSFULLY"))
	}))
	defer server.Close()

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("backend", server.URL),
		pkghttp.WithRequestObservability(observability.New(), pkghttp.DefaultRequestIDHeader),
	)

	resp, err := client.NewRequest(context.Background(), pkghttp.Route{Method: http.MethodPost, URL: "/accept"}).Send()
	require.NoError(t, err)

	text, err := pkghttp.ParseResponse(resp, pkghttp.TextBody(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED SUCCESSFULLY", text)
	assert.NotEmpty(t, gotRequestID)
}

func TestRoute_Name(t *testing.T) {
	route := pkghttp.Route{Method: http.MethodPost, URL: "/api/pmc/updatetaccept/{parcelID}/{userID}"}
	assert.Equal(t, "post-api-pmc-updatetaccept-parcel-id-user-id", route.Name())
}
