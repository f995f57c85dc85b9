package screen

import (
	"fmt"
	"strings"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

type Home struct {
	base
}

func NewHome(deps *Deps) *Home {
	return &Home{base: newBase(deps, router.PathHome)}
}

// Markdown is the home page copy for the current session.
func (s *Home) Markdown() string {
	sess := s.deps.Sessions.Session()
	chrome := router.SelectChrome(sess.IsAuthenticated(), sess.Role)

	var b strings.Builder
	b.WriteString("# ParcelShare\n\n")
	b.WriteString("Send parcels with travelers already heading your way.\n\n")

	switch chrome {
	case router.ChromeSender:
		fmt.Fprintf(&b, "Welcome, **%s**.\n\n", sess.Role)
		b.WriteString("- **Add-Parcel** to describe what you need delivered\n")
		b.WriteString("- **Request-Received** to review travelers offering to carry it\n")
		b.WriteString("- **Accepted-Request** and **Match** to follow the delivery\n")
	case router.ChromeTraveler:
		fmt.Fprintf(&b, "Welcome, **%s**.\n\n", sess.Role)
		b.WriteString("- **Add-Traveler** to publish your trip and spare capacity\n")
		b.WriteString("- **Suggestions** to pick parcels along your route\n")
		b.WriteString("- **Requested**, **Matched** and **All** to manage your trips\n")
	default:
		if sess.IsAuthenticated() && domain.CanonicalRole(sess.Role) == domain.RoleGuest {
			fmt.Fprintf(&b, "Your account role `%s` has no screens yet.\n\n", sess.Role)
		}
		b.WriteString("**Sign In** or **Sign Up** as a sender or a traveler to get started.\n")
	}

	return b.String()
}
