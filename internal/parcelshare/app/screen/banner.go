package screen

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
)

const (
	MessageSessionExpired = "Session expired. Please log in again."
	MessageNoUserID       = "User ID not found. Please log in again."
)

type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerError
	BannerSuccess
)

type Banner struct {
	Kind BannerKind
	Text string
}

func (b Banner) Visible() bool {
	return b.Kind != BannerNone && b.Text != ""
}

func errorBanner(text string) Banner {
	return Banner{Kind: BannerError, Text: text}
}

func successBanner(text string) Banner {
	return Banner{Kind: BannerSuccess, Text: text}
}

type Failure int

const (
	FailureGeneric Failure = iota
	FailureSessionExpired
	FailureForbidden
	FailureNetwork
	FailureCancelled
)

func Classify(err error) Failure {
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		return FailureSessionExpired
	case errors.Is(err, backend.ErrForbidden):
		return FailureForbidden
	case errors.Is(err, context.Canceled):
		return FailureCancelled
	case errors.Is(err, backend.ErrNetwork):
		return FailureNetwork
	default:
		return FailureGeneric
	}
}

// subject names what a screen loads and the role the backend requires for it.
type subject struct {
	thing string
	role  string
}

func (s subject) loadFailed() string {
	return fmt.Sprintf("Failed to load %s. Please try again.", s.thing)
}

func (s subject) accessDenied(action string) string {
	return fmt.Sprintf("Access denied. You need %s role to %s.", s.role, action)
}

// action describes a mutation for its messages.
type action struct {
	verb    string
	gerund  string
	thing   string
	success string
}

func (a action) rejected(reason string) string {
	return fmt.Sprintf("Failed to %s %s: %s", a.verb, a.thing, reason)
}

func (a action) failed() string {
	return fmt.Sprintf("Error %s %s. Please try again.", a.gerund, a.thing)
}

// failure turns err into the banner of the screen. ok is false when nothing
// has to be shown because the work was cancelled.
func (b *base) failure(ctx context.Context, err error, subj subject, generic string) (Banner, bool) {
	switch Classify(err) {
	case FailureCancelled:
		return Banner{}, false
	case FailureSessionExpired:
		b.deps.Router.HandleSessionExpired(ctx)
		return errorBanner(MessageSessionExpired), true
	case FailureForbidden:
		if subj.role != "" {
			return errorBanner(subj.accessDenied("view this page")), true
		}
	}

	b.deps.Logger.WithError(err).Warn(ctx, "backend call failed")
	return errorBanner(generic), true
}
