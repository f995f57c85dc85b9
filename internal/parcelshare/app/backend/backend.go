//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

// SuccessMarker is contained in the text answer of every mutation that
// succeeded.
const SuccessMarker = "SUCCESSFULLY"

var (
	ErrUnauthorized = errors.New("authentication rejected")
	ErrForbidden    = errors.New("access denied")
	ErrNetwork      = errors.New("backend unreachable")
)

// ServerError is a non-2xx answer. 401 and 403 answers match
// ErrUnauthorized and ErrForbidden.
type ServerError struct {
	StatusCode int
	// Message is the text the server put into the body, possibly empty.
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server responded with status %d: %s", e.StatusCode, e.Message)
}

func (e *ServerError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return nil
	}
}

// ServerMessage extracts the server supplied message from err, if any.
func ServerMessage(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	return ""
}

type ActionResult struct {
	Success bool
	// Message is the whole answer text.
	Message string
}

func ParseActionText(text string) ActionResult {
	return ActionResult{
		Success: strings.Contains(text, SuccessMarker),
		Message: text,
	}
}

type LoginResult struct {
	Token  string
	Role   domain.Role
	UserID *int64
}

// API is the ParcelShare backend. Protected calls are authorized with the
// token of the current session.
type API interface {
	Login(ctx context.Context, credentials domain.Credentials) (LoginResult, error)
	Register(ctx context.Context, registration domain.Registration) (string, error)

	AddParcel(ctx context.Context, parcel domain.NewParcel) (string, error)
	AddTravelPlan(ctx context.Context, plan domain.NewTravelPlan) (string, error)

	TravelerCandidates(ctx context.Context, travelPlanID, userID int64) ([]domain.Parcel, error)
	AllTravelPlans(ctx context.Context, userID int64) ([]domain.TravelPlan, error)
	TravelerRequests(ctx context.Context, userID int64) ([]domain.Parcel, error)
	TravelerAccept(ctx context.Context, parcelID, userID int64) (ActionResult, error)
	TravelerReject(ctx context.Context, parcelID, userID int64) (ActionResult, error)
	TravelerMatches(ctx context.Context, userID int64) ([]domain.TravelerMatch, error)

	ParcelRequests(ctx context.Context, userID int64) ([]domain.ParcelRequest, error)
	AcceptedParcelRequests(ctx context.Context, userID int64) ([]domain.ParcelRequest, error)
	AcceptParcelRequest(ctx context.Context, matchID int64) (ActionResult, error)
	RejectParcelRequest(ctx context.Context, matchID int64) (ActionResult, error)
	ParcelMatches(ctx context.Context, userID int64) ([]domain.ParcelMatch, error)
}
