package screen

import (
	"context"
	"time"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

const roleParcel = "PARCEL"

func parcelRequestID(r domain.ParcelRequest) int64 {
	return r.MatchID
}

// ParcelRequests lists requests travelers sent for the sender's parcels.
type ParcelRequests struct {
	*List[domain.ParcelRequest]
}

func NewParcelRequests(deps *Deps) *ParcelRequests {
	return &ParcelRequests{newList(deps, router.PathParcelRequests,
		subject{thing: "parcel requests", role: roleParcel},
		parcelRequestID,
		deps.API.ParcelRequests,
	)}
}

func (s *ParcelRequests) Accept(matchID int64) Task {
	return s.act(matchID,
		action{verb: "accept", gerund: "accepting", thing: "request", success: "Parcel request accepted successfully!"},
		func(ctx context.Context) (backend.ActionResult, error) {
			return s.deps.API.AcceptParcelRequest(ctx, matchID)
		},
		func() { s.remove(matchID) },
	)
}

// ParcelAccepted lists requests the sender already accepted.
type ParcelAccepted struct {
	*List[domain.ParcelRequest]
}

func NewParcelAccepted(deps *Deps) *ParcelAccepted {
	return &ParcelAccepted{newList(deps, router.PathParcelAccepted,
		subject{thing: "accepted requests", role: roleParcel},
		parcelRequestID,
		deps.API.AcceptedParcelRequests,
	)}
}

func (s *ParcelAccepted) Reject(matchID int64) Task {
	return s.act(matchID,
		action{verb: "reject", gerund: "rejecting", thing: "request", success: "Request rejected successfully!"},
		func(ctx context.Context) (backend.ActionResult, error) {
			return s.deps.API.RejectParcelRequest(ctx, matchID)
		},
		func() { s.remove(matchID) },
	)
}

type ParcelMatched struct {
	*List[domain.ParcelMatch]
}

func NewParcelMatched(deps *Deps) *ParcelMatched {
	return &ParcelMatched{newList(deps, router.PathParcelMatched,
		subject{thing: "matched parcels", role: roleParcel},
		func(m domain.ParcelMatch) int64 { return m.ID },
		deps.API.ParcelMatches,
	)}
}

// CountByStatus counts matches whose parcel has status.
func (s *ParcelMatched) CountByStatus(status domain.Status) int {
	var count int
	for _, m := range s.items {
		if m.Parcel != nil && m.Parcel.Status == status {
			count++
		}
	}
	return count
}

func urgentCount(parcels []*domain.Parcel, now time.Time) int {
	var count int
	for _, p := range parcels {
		if p != nil && domain.IsUrgent(p.Deadline, now) {
			count++
		}
	}
	return count
}

func (s *ParcelRequests) Summary(now time.Time) Summary {
	return requestSummary(s.items, now)
}

func (s *ParcelAccepted) Summary(now time.Time) Summary {
	return requestSummary(s.items, now)
}

// Summary holds the counters shown above a list.
type Summary struct {
	Total       int
	Urgent      int
	WeightGrams int
}

func requestSummary(requests []domain.ParcelRequest, now time.Time) Summary {
	parcels := make([]*domain.Parcel, 0, len(requests))
	for _, r := range requests {
		parcels = append(parcels, r.Parcel)
	}
	return Summary{
		Total:       len(requests),
		Urgent:      urgentCount(parcels, now),
		WeightGrams: domain.TotalWeightGrams(parcels...),
	}
}
