package screen

import (
	"context"

	"github.com/bluele/gcache"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
)

// Factory mounts screens behind the protected route guard.
type Factory struct {
	deps       *Deps
	candidates gcache.Cache
}

func NewFactory(deps *Deps, candidates gcache.Cache) *Factory {
	return &Factory{
		deps:       deps,
		candidates: candidates,
	}
}

// Open builds the screen for path and the tasks of its initial fetch. A
// protected screen without a session becomes a Placeholder and fetches
// nothing.
func (f *Factory) Open(ctx context.Context, path string) (Screen, []Task) {
	route := router.Resolve(path)
	if !f.deps.Router.Guard(ctx, route) {
		return &Placeholder{base: newBase(f.deps, route.Path)}, nil
	}

	s := f.build(route)
	if loader, ok := s.(interface{ Init() []Task }); ok {
		return s, loader.Init()
	}
	return s, nil
}

func (f *Factory) build(route router.Route) Screen {
	switch route.Screen {
	case router.ScreenLogin:
		return NewLogin(f.deps)
	case router.ScreenSignup:
		return NewSignup(f.deps)
	case router.ScreenAddParcel:
		return NewAddParcel(f.deps)
	case router.ScreenParcelRequests:
		return NewParcelRequests(f.deps)
	case router.ScreenParcelAccepted:
		return NewParcelAccepted(f.deps)
	case router.ScreenParcelMatched:
		return NewParcelMatched(f.deps)
	case router.ScreenAddTravelPlan:
		return NewAddTravelPlan(f.deps)
	case router.ScreenTravelerSuggestions:
		return NewTravelerSuggestions(f.deps, f.candidates)
	case router.ScreenTravelerRequests:
		return NewTravelerRequests(f.deps)
	case router.ScreenTravelerMatched:
		return NewTravelerMatched(f.deps)
	case router.ScreenTravelerAll:
		return NewTravelerAll(f.deps)
	default:
		return NewHome(f.deps)
	}
}
