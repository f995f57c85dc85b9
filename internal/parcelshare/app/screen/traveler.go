package screen

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/bluele/gcache"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

const roleTraveler = "TRAVELER"

const (
	candidateCacheSize = 128
	candidateCacheTTL  = time.Minute
)

type candidateKey struct {
	userID       int64
	travelPlanID int64
}

// NewCandidateCache keeps the parcels proposed for travel plans between
// visits of the suggestions screen.
func NewCandidateCache() gcache.Cache {
	return gcache.New(candidateCacheSize).
		LRU().
		Expiration(candidateCacheTTL).
		Build()
}

func travelPlanID(t domain.TravelPlan) int64 {
	return t.ID
}

func parcelID(p domain.Parcel) int64 {
	return p.ID
}

// TravelerSuggestions lists the traveler's plans; expanding a plan shows the
// parcels the backend proposes for it.
type TravelerSuggestions struct {
	*List[domain.TravelPlan]

	cache      gcache.Cache
	candidates map[int64][]domain.Parcel
	fetching   map[int64]bool
}

func NewTravelerSuggestions(deps *Deps, cache gcache.Cache) *TravelerSuggestions {
	return &TravelerSuggestions{
		List: newList(deps, router.PathTravelerSuggestions,
			subject{thing: "travel plans", role: roleTraveler},
			travelPlanID,
			deps.API.AllTravelPlans,
		),
		cache:      cache,
		candidates: make(map[int64][]domain.Parcel),
		fetching:   make(map[int64]bool),
	}
}

func (s *TravelerSuggestions) Candidates(travelPlanID int64) ([]domain.Parcel, bool) {
	parcels, ok := s.candidates[travelPlanID]
	return parcels, ok
}

func (s *TravelerSuggestions) FetchingCandidates(travelPlanID int64) bool {
	return s.fetching[travelPlanID]
}

// Expand toggles the plan and fetches its candidates the first time.
func (s *TravelerSuggestions) Expand(travelPlanID int64) Task {
	s.Toggle(travelPlanID)
	if !s.IsExpanded(travelPlanID) || s.fetching[travelPlanID] {
		return nil
	}
	if _, ok := s.candidates[travelPlanID]; ok {
		return nil
	}

	userID, ok := s.userID()
	if !ok {
		s.banner = errorBanner(MessageNoUserID)
		return nil
	}

	key := candidateKey{userID: userID, travelPlanID: travelPlanID}
	if cached, err := s.cache.Get(key); err == nil {
		s.candidates[travelPlanID] = cached.([]domain.Parcel)
		return nil
	}

	s.fetching[travelPlanID] = true
	return func(ctx context.Context) Apply {
		parcels, err := s.deps.API.TravelerCandidates(ctx, travelPlanID, userID)
		return func() {
			delete(s.fetching, travelPlanID)
			if err != nil {
				if errors.Is(err, backend.ErrUnauthorized) {
					s.banner, _ = s.failure(ctx, err, s.subject, "")
				}
				s.deps.Logger.WithError(err).WithField("travelPlanID", travelPlanID).Warn(ctx, "failed to fetch candidate parcels")
				return
			}

			s.candidates[travelPlanID] = parcels
			s.store(key, parcels)
		}
	}
}

// Accept takes parcelID onto the travel plan.
func (s *TravelerSuggestions) Accept(parcelID, travelPlanID int64) Task {
	userID, ok := s.userID()
	if !ok {
		s.banner = errorBanner(MessageNoUserID)
		return nil
	}

	return s.act(parcelID,
		action{verb: "accept", gerund: "accepting", thing: "parcel", success: "Parcel accepted successfully!"},
		func(ctx context.Context) (backend.ActionResult, error) {
			return s.deps.API.TravelerAccept(ctx, parcelID, userID)
		},
		func() {
			parcels := slices.DeleteFunc(slices.Clone(s.candidates[travelPlanID]), func(p domain.Parcel) bool {
				return p.ID == parcelID
			})
			s.candidates[travelPlanID] = parcels
			s.store(candidateKey{userID: userID, travelPlanID: travelPlanID}, parcels)
		},
	)
}

func (s *TravelerSuggestions) store(key candidateKey, parcels []domain.Parcel) {
	err := s.cache.Set(key, parcels)
	if err != nil {
		s.deps.Logger.WithError(err).Warn(context.Background(), "failed to cache candidate parcels")
	}
}

// TravelerRequests lists parcels the traveler was asked to carry.
type TravelerRequests struct {
	*List[domain.Parcel]
}

func NewTravelerRequests(deps *Deps) *TravelerRequests {
	return &TravelerRequests{newList(deps, router.PathTravelerRequests,
		subject{thing: "parcel requests", role: roleTraveler},
		parcelID,
		deps.API.TravelerRequests,
	)}
}

func (s *TravelerRequests) Reject(parcelID int64) Task {
	userID, ok := s.userID()
	if !ok {
		s.banner = errorBanner(MessageNoUserID)
		return nil
	}

	return s.act(parcelID,
		action{verb: "reject", gerund: "rejecting", thing: "request", success: "Request rejected successfully!"},
		func(ctx context.Context) (backend.ActionResult, error) {
			return s.deps.API.TravelerReject(ctx, parcelID, userID)
		},
		func() { s.remove(parcelID) },
	)
}

func (s *TravelerRequests) Summary(now time.Time) Summary {
	parcels := make([]*domain.Parcel, 0, len(s.items))
	for i := range s.items {
		parcels = append(parcels, &s.items[i])
	}
	return Summary{
		Total:       len(s.items),
		Urgent:      urgentCount(parcels, now),
		WeightGrams: domain.TotalWeightGrams(parcels...),
	}
}

type TravelerMatched struct {
	*List[domain.TravelerMatch]
}

func NewTravelerMatched(deps *Deps) *TravelerMatched {
	return &TravelerMatched{newList(deps, router.PathTravelerMatched,
		subject{thing: "matched travelers", role: roleTraveler},
		func(m domain.TravelerMatch) int64 { return m.ID },
		deps.API.TravelerMatches,
	)}
}

func (s *TravelerMatched) CountByStatus(status domain.Status) int {
	var count int
	for _, m := range s.items {
		if m.Parcel != nil && m.Parcel.Status == status {
			count++
		}
	}
	return count
}

// TravelerAll lists every travel plan of the traveler.
type TravelerAll struct {
	*List[domain.TravelPlan]
}

func NewTravelerAll(deps *Deps) *TravelerAll {
	return &TravelerAll{newList(deps, router.PathTravelerAll,
		subject{thing: "travelers", role: roleTraveler},
		travelPlanID,
		deps.API.AllTravelPlans,
	)}
}
