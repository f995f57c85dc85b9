package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	pkghttp "github.com/klwxsrx/parcelshare/pkg/http"
)

const Destination pkghttp.Destination = "parcelshare-api"

var (
	loginRoute                  = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/login"}
	registerRoute               = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/register"}
	addParcelRoute              = pkghttp.Route{Method: http.MethodPost, URL: "/api/service/addparcel"}
	addTravelerRoute            = pkghttp.Route{Method: http.MethodPost, URL: "/api/service/addtraveler"}
	travelerCandidatesRoute     = pkghttp.Route{Method: http.MethodPost, URL: "/api/service/algo/traveler/{travelerID}/{userID}"}
	allTravelersRoute           = pkghttp.Route{Method: http.MethodPost, URL: "/api/pmc/alltraveler/{userID}"}
	parcelRequestsRoute         = pkghttp.Route{Method: http.MethodGet, URL: "/api/pmc/prequest/{userID}"}
	acceptParcelRequestRoute    = pkghttp.Route{Method: http.MethodPost, URL: "/api/pmc/updatepaccept/{matchID}"}
	rejectParcelRequestRoute    = pkghttp.Route{Method: http.MethodPost, URL: "/api/pmc/updatepreject/{matchID}"}
	travelerRequestsRoute       = pkghttp.Route{Method: http.MethodGet, URL: "/api/pmc/trequest/{userID}"}
	travelerRejectRoute         = pkghttp.Route{Method: http.MethodPost, URL: "/api/pmc/updatetreject/{parcelID}/{userID}"}
	travelerAcceptRoute         = pkghttp.Route{Method: http.MethodPost, URL: "/api/pmc/updatetaccept/{parcelID}/{userID}"}
	acceptedParcelRequestsRoute = pkghttp.Route{Method: http.MethodGet, URL: "/api/pmc/parequest/{userID}"}
	parcelMatchesRoute          = pkghttp.Route{Method: http.MethodGet, URL: "/api/pmc/pmatched/{userID}"}
	travelerMatchesRoute        = pkghttp.Route{Method: http.MethodGet, URL: "/api/pmc/tmatched/{userID}"}
)

// TokenSource provides the bearer token of the current session.
type TokenSource interface {
	Token() string
}

type api struct {
	client pkghttp.Client
	tokens TokenSource
}

func NewBackend(client pkghttp.Client, tokens TokenSource) backend.API {
	return api{client: client, tokens: tokens}
}

func (a api) Login(ctx context.Context, credentials domain.Credentials) (backend.LoginResult, error) {
	resp, err := a.client.NewRequest(ctx, loginRoute).
		SetBody(toLoginIn(credentials)).
		Send()
	out, err := parse(resp, err, "auth.login", pkghttp.JSONBody[LoginOut]())
	if err != nil {
		return backend.LoginResult{}, err
	}

	return out.toResult(), nil
}

func (a api) Register(ctx context.Context, registration domain.Registration) (string, error) {
	resp, err := a.client.NewRequest(ctx, registerRoute).
		SetBody(toRegisterIn(registration)).
		Send()
	return parse(resp, err, "auth.register", pkghttp.TextBody())
}

func (a api) AddParcel(ctx context.Context, parcel domain.NewParcel) (string, error) {
	resp, err := a.authorized(ctx, addParcelRoute).
		SetBody(toAddParcelIn(parcel)).
		Send()
	return parse(resp, err, "service.addparcel", pkghttp.TextBody())
}

func (a api) AddTravelPlan(ctx context.Context, plan domain.NewTravelPlan) (string, error) {
	resp, err := a.authorized(ctx, addTravelerRoute).
		SetBody(toAddTravelerIn(plan)).
		Send()
	return parse(resp, err, "service.addtraveler", pkghttp.TextBody())
}

func (a api) TravelerCandidates(ctx context.Context, travelPlanID, userID int64) ([]domain.Parcel, error) {
	resp, err := a.authorized(ctx, travelerCandidatesRoute).
		SetPathParam("travelerID", formatID(travelPlanID)).
		SetPathParam("userID", formatID(userID)).
		SetBody(struct{}{}).
		Send()
	out, err := parse(resp, err, "service.algo.traveler", pkghttp.JSONBody[[]ParcelOut]())
	if err != nil {
		return nil, err
	}

	return toParcels(out), nil
}

func (a api) AllTravelPlans(ctx context.Context, userID int64) ([]domain.TravelPlan, error) {
	resp, err := a.authorized(ctx, allTravelersRoute).
		SetPathParam("userID", formatID(userID)).
		SetBody(struct{}{}).
		Send()
	out, err := parse(resp, err, "pmc.alltraveler", pkghttp.JSONBody[[]TravelPlanOut]())
	if err != nil {
		return nil, err
	}

	return toTravelPlans(out), nil
}

func (a api) TravelerRequests(ctx context.Context, userID int64) ([]domain.Parcel, error) {
	resp, err := a.authorized(ctx, travelerRequestsRoute).
		SetPathParam("userID", formatID(userID)).
		Send()
	out, err := parse(resp, err, "pmc.trequest", pkghttp.JSONBody[[]ParcelOut]())
	if err != nil {
		return nil, err
	}

	return toParcels(out), nil
}

func (a api) TravelerAccept(ctx context.Context, parcelID, userID int64) (backend.ActionResult, error) {
	return a.action(ctx, travelerAcceptRoute, "pmc.updatetaccept", map[string]int64{
		"parcelID": parcelID,
		"userID":   userID,
	})
}

func (a api) TravelerReject(ctx context.Context, parcelID, userID int64) (backend.ActionResult, error) {
	return a.action(ctx, travelerRejectRoute, "pmc.updatetreject", map[string]int64{
		"parcelID": parcelID,
		"userID":   userID,
	})
}

func (a api) TravelerMatches(ctx context.Context, userID int64) ([]domain.TravelerMatch, error) {
	resp, err := a.authorized(ctx, travelerMatchesRoute).
		SetPathParam("userID", formatID(userID)).
		Send()
	out, err := parse(resp, err, "pmc.tmatched", pkghttp.JSONBody[[]TravelerMatchOut]())
	if err != nil {
		return nil, err
	}

	return toTravelerMatches(out), nil
}

func (a api) ParcelRequests(ctx context.Context, userID int64) ([]domain.ParcelRequest, error) {
	return a.parcelRequests(ctx, parcelRequestsRoute, "pmc.prequest", userID)
}

func (a api) AcceptedParcelRequests(ctx context.Context, userID int64) ([]domain.ParcelRequest, error) {
	return a.parcelRequests(ctx, acceptedParcelRequestsRoute, "pmc.parequest", userID)
}

func (a api) AcceptParcelRequest(ctx context.Context, matchID int64) (backend.ActionResult, error) {
	return a.action(ctx, acceptParcelRequestRoute, "pmc.updatepaccept", map[string]int64{"matchID": matchID})
}

func (a api) RejectParcelRequest(ctx context.Context, matchID int64) (backend.ActionResult, error) {
	return a.action(ctx, rejectParcelRequestRoute, "pmc.updatepreject", map[string]int64{"matchID": matchID})
}

func (a api) ParcelMatches(ctx context.Context, userID int64) ([]domain.ParcelMatch, error) {
	resp, err := a.authorized(ctx, parcelMatchesRoute).
		SetPathParam("userID", formatID(userID)).
		Send()
	out, err := parse(resp, err, "pmc.pmatched", pkghttp.JSONBody[[]ParcelMatchOut]())
	if err != nil {
		return nil, err
	}

	return toParcelMatches(out), nil
}

func (a api) parcelRequests(ctx context.Context, route pkghttp.Route, op string, userID int64) ([]domain.ParcelRequest, error) {
	resp, err := a.authorized(ctx, route).
		SetPathParam("userID", formatID(userID)).
		Send()
	out, err := parse(resp, err, op, pkghttp.JSONBody[[]ParcelRequestOut]())
	if err != nil {
		return nil, err
	}

	return toParcelRequests(out), nil
}

func (a api) action(ctx context.Context, route pkghttp.Route, op string, params map[string]int64) (backend.ActionResult, error) {
	req := a.authorized(ctx, route).SetBody(struct{}{})
	for name, value := range params {
		req.SetPathParam(name, formatID(value))
	}

	resp, err := req.Send()
	text, err := parse(resp, err, op, pkghttp.TextBody())
	if err != nil {
		return backend.ActionResult{}, err
	}

	return backend.ParseActionText(text), nil
}

func (a api) authorized(ctx context.Context, route pkghttp.Route) *pkghttp.Request {
	return a.client.NewRequest(ctx, route).SetAuthToken(a.tokens.Token())
}

func parse[T any](resp *pkghttp.Response, err error, op string, extractor pkghttp.DataExtractor[T]) (T, error) {
	var empty T
	if err != nil {
		return empty, fmt.Errorf("request %s: %w: %w", op, backend.ErrNetwork, err)
	}
	if !resp.IsSuccess() {
		return empty, fmt.Errorf("request %s: %w", op, &backend.ServerError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(resp.Body()),
		})
	}

	result, err := pkghttp.ParseResponse(resp, extractor, nil)
	if err != nil {
		return empty, fmt.Errorf("%s response: %w", op, err)
	}

	return result, nil
}

// errorMessage prefers the message field of a JSON error body and falls back
// to the plain text answer.
func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if !strings.HasPrefix(text, "{") {
		return text
	}

	var out ErrorOut
	if json.Unmarshal(body, &out) != nil {
		return ""
	}
	return out.Message
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
