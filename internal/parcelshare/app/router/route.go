package router

import (
	"strings"
)

const (
	PathHome                = "/"
	PathLogin               = "/login"
	PathSignup              = "/signup"
	PathAddParcel           = "/addparcel"
	PathParcelRequests      = "/suggestion"
	PathParcelAccepted      = "/prequest"
	PathParcelMatched       = "/parcel-matched"
	PathAddTravelPlan       = "/add-traveler"
	PathTravelerSuggestions = "/traveler-suggestions"
	PathTravelerRequests    = "/traveler-requests"
	PathTravelerMatched     = "/traveler-matched"
	PathTravelerAll         = "/traveler-all"
)

type Screen int

const (
	ScreenHome Screen = iota
	ScreenLogin
	ScreenSignup
	ScreenAddParcel
	ScreenParcelRequests
	ScreenParcelAccepted
	ScreenParcelMatched
	ScreenAddTravelPlan
	ScreenTravelerSuggestions
	ScreenTravelerRequests
	ScreenTravelerMatched
	ScreenTravelerAll
)

type Route struct {
	Path      string
	Screen    Screen
	Title     string
	Protected bool
}

var routes = []Route{
	{Path: PathHome, Screen: ScreenHome, Title: "Home"},
	{Path: PathLogin, Screen: ScreenLogin, Title: "Sign In"},
	{Path: PathSignup, Screen: ScreenSignup, Title: "Sign Up"},
	{Path: PathAddParcel, Screen: ScreenAddParcel, Title: "Add Parcel", Protected: true},
	{Path: PathParcelRequests, Screen: ScreenParcelRequests, Title: "Requests Received", Protected: true},
	{Path: PathParcelAccepted, Screen: ScreenParcelAccepted, Title: "Accepted Requests", Protected: true},
	{Path: PathParcelMatched, Screen: ScreenParcelMatched, Title: "Matched Parcels", Protected: true},
	{Path: PathAddTravelPlan, Screen: ScreenAddTravelPlan, Title: "Add Travel Plan", Protected: true},
	{Path: PathTravelerSuggestions, Screen: ScreenTravelerSuggestions, Title: "Suggestions", Protected: true},
	{Path: PathTravelerRequests, Screen: ScreenTravelerRequests, Title: "Requested Parcels", Protected: true},
	{Path: PathTravelerMatched, Screen: ScreenTravelerMatched, Title: "Matched Travelers", Protected: true},
	{Path: PathTravelerAll, Screen: ScreenTravelerAll, Title: "All Travel Plans", Protected: true},
}

// Routes lists every known route, Home first.
func Routes() []Route {
	result := make([]Route, len(routes))
	copy(result, routes)
	return result
}

// Resolve finds the route for path; unknown paths resolve to Home.
func Resolve(path string) Route {
	path = normalize(path)
	for _, r := range routes {
		if r.Path == path {
			return r
		}
	}
	return routes[0]
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path != PathHome {
		path = strings.TrimRight(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
