package router

import (
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

type Chrome int

const (
	ChromeGuest Chrome = iota
	ChromeSender
	ChromeTraveler
)

type Link struct {
	Title string
	Path  string
}

var chromeLinks = map[Chrome][]Link{
	ChromeGuest: {
		{Title: "Sign In", Path: PathLogin},
		{Title: "Sign Up", Path: PathSignup},
	},
	ChromeSender: {
		{Title: "Home", Path: PathHome},
		{Title: "Add-Parcel", Path: PathAddParcel},
		{Title: "Request-Received", Path: PathParcelRequests},
		{Title: "Accepted-Request", Path: PathParcelAccepted},
		{Title: "Match", Path: PathParcelMatched},
	},
	ChromeTraveler: {
		{Title: "Home", Path: PathHome},
		{Title: "Suggestions", Path: PathTravelerSuggestions},
		{Title: "Add-Traveler", Path: PathAddTravelPlan},
		{Title: "Requested", Path: PathTravelerRequests},
		{Title: "Matched", Path: PathTravelerMatched},
		{Title: "All", Path: PathTravelerAll},
	},
}

// SelectChrome is total: anything that is not an authenticated sender or
// traveler gets the guest chrome.
func SelectChrome(authenticated bool, role domain.Role) Chrome {
	if !authenticated {
		return ChromeGuest
	}

	switch domain.CanonicalRole(role) {
	case domain.RoleSender:
		return ChromeSender
	case domain.RoleTraveler:
		return ChromeTraveler
	default:
		return ChromeGuest
	}
}

func (c Chrome) Links() []Link {
	links := chromeLinks[c]
	result := make([]Link, len(links))
	copy(result, links)
	return result
}

// HasLogout reports whether the chrome offers the logout control.
func (c Chrome) HasLogout() bool {
	return c != ChromeGuest
}

func (c Chrome) String() string {
	switch c {
	case ChromeSender:
		return "sender"
	case ChromeTraveler:
		return "traveler"
	default:
		return "guest"
	}
}
