package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

const descriptionPreviewLength = 100

// row is one selectable line of a list screen.
type row struct {
	id          int64
	travelPlan  int64
	candidate   bool
	title       string
	status      string
	urgent      bool
	expanded    bool
	processing  bool
	summary     string
	details     []string
	placeholder bool
}

func listRows(s screen.Screen, now time.Time) ([]row, bool) {
	switch s := s.(type) {
	case *screen.ParcelRequests:
		return requestRows(s.List, s.Items(), now), true
	case *screen.ParcelAccepted:
		return requestRows(s.List, s.Items(), now), true
	case *screen.ParcelMatched:
		rows := make([]row, 0, len(s.Items()))
		for _, m := range s.Items() {
			r := row{
				id:       m.ID,
				title:    fmt.Sprintf("Match #%d", m.ID),
				status:   parcelStatus(m.Parcel, domain.StatusMatched),
				expanded: s.IsExpanded(m.ID),
			}
			r.summary, r.details = parcelDetails(m.Parcel, now)
			r.details = append(r.details, travelPlanDetails("Traveler", m.Traveler)...)
			rows = append(rows, r)
		}
		return rows, true
	case *screen.TravelerMatched:
		rows := make([]row, 0, len(s.Items()))
		for _, m := range s.Items() {
			r := row{
				id:       m.ID,
				title:    fmt.Sprintf("Match #%d", m.ID),
				status:   parcelStatus(m.Parcel, domain.StatusMatched),
				expanded: s.IsExpanded(m.ID),
			}
			r.summary, r.details = parcelDetails(m.Parcel, now)
			rows = append(rows, r)
		}
		return rows, true
	case *screen.TravelerRequests:
		rows := make([]row, 0, len(s.Items()))
		for i := range s.Items() {
			p := &s.Items()[i]
			r := row{
				id:         p.ID,
				title:      fmt.Sprintf("Parcel #%d", p.ID),
				status:     parcelStatus(p, domain.StatusPending),
				urgent:     domain.IsUrgent(p.Deadline, now),
				expanded:   s.IsExpanded(p.ID),
				processing: s.IsProcessing(p.ID),
			}
			r.summary, r.details = parcelDetails(p, now)
			rows = append(rows, r)
		}
		return rows, true
	case *screen.TravelerAll:
		rows := make([]row, 0, len(s.Items()))
		for i := range s.Items() {
			t := &s.Items()[i]
			rows = append(rows, travelPlanRow(t, s.IsExpanded(t.ID)))
		}
		return rows, true
	case *screen.TravelerSuggestions:
		return suggestionRows(s, now), true
	default:
		return nil, false
	}
}

func requestRows(list *screen.List[domain.ParcelRequest], requests []domain.ParcelRequest, now time.Time) []row {
	rows := make([]row, 0, len(requests))
	for _, req := range requests {
		r := row{
			id:         req.MatchID,
			title:      fmt.Sprintf("Request #%d", req.MatchID),
			status:     parcelStatus(req.Parcel, domain.StatusPending),
			expanded:   list.IsExpanded(req.MatchID),
			processing: list.IsProcessing(req.MatchID),
		}
		if req.Parcel != nil {
			r.urgent = domain.IsUrgent(req.Parcel.Deadline, now)
		}
		r.summary, r.details = parcelDetails(req.Parcel, now)
		r.details = append(r.details, travelPlanDetails("Traveler", req.Traveler)...)
		rows = append(rows, r)
	}
	return rows
}

func suggestionRows(s *screen.TravelerSuggestions, now time.Time) []row {
	rows := make([]row, 0, len(s.Items()))
	for i := range s.Items() {
		t := &s.Items()[i]
		rows = append(rows, travelPlanRow(t, s.IsExpanded(t.ID)))
		if !s.IsExpanded(t.ID) {
			continue
		}

		if s.FetchingCandidates(t.ID) {
			rows = append(rows, row{travelPlan: t.ID, placeholder: true, title: "Finding parcels along this route..."})
			continue
		}
		candidates, _ := s.Candidates(t.ID)
		if len(candidates) == 0 {
			rows = append(rows, row{travelPlan: t.ID, placeholder: true, title: "No matching parcels for this travel plan"})
			continue
		}
		for j := range candidates {
			p := &candidates[j]
			r := row{
				id:         p.ID,
				travelPlan: t.ID,
				candidate:  true,
				title:      fmt.Sprintf("Parcel #%d", p.ID),
				status:     parcelStatus(p, domain.StatusPending),
				urgent:     domain.IsUrgent(p.Deadline, now),
				processing: s.IsProcessing(p.ID),
			}
			r.summary, _ = parcelDetails(p, now)
			rows = append(rows, r)
		}
	}
	return rows
}

func travelPlanRow(t *domain.TravelPlan, expanded bool) row {
	return row{
		id:       t.ID,
		title:    fmt.Sprintf("Travel plan #%d", t.ID),
		status:   string(domain.StatusOr(t.Status, domain.StatusActive)),
		expanded: expanded,
		summary: fmt.Sprintf("%s → %s · %dg capacity · %s",
			domain.FormatDate(t.OriginDate),
			domain.FormatDate(t.DestinationDate),
			t.CapacityGrams,
			domain.FormatDistance(t.RouteDistanceKm()),
		),
		details: travelPlanDetails("Route", t),
	}
}

func parcelStatus(p *domain.Parcel, def domain.Status) string {
	if p == nil {
		return string(def)
	}
	return string(domain.StatusOr(p.Status, def))
}

func parcelDetails(p *domain.Parcel, now time.Time) (string, []string) {
	if p == nil {
		return "Parcel details unavailable", nil
	}

	summary := fmt.Sprintf("%dg · deadline %s%s · %s",
		p.WeightGrams,
		domain.FormatDate(p.Deadline),
		daysLeft(p.Deadline, now),
		domain.FormatDistance(p.RouteDistanceKm()),
	)

	details := []string{
		fmt.Sprintf("Parcel ID: %d", p.ID),
		fmt.Sprintf("Pickup: %s (%.6f, %.6f)", domain.FormatDate(p.PickupDate), p.Pickup.Lat, p.Pickup.Lng),
		fmt.Sprintf("Delivery: %s (%.6f, %.6f)", domain.FormatDate(p.DestinationDate), p.Destination.Lat, p.Destination.Lng),
		fmt.Sprintf("Route distance: %s", domain.FormatDistance(p.RouteDistanceKm())),
	}
	if p.Description != "" {
		details = append(details, "Description: "+preview(p.Description))
	}
	return summary, details
}

func travelPlanDetails(label string, t *domain.TravelPlan) []string {
	if t == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("%s: plan #%d, %dg capacity", label, t.ID, t.CapacityGrams),
		fmt.Sprintf("  From (%.6f, %.6f) on %s", t.Origin.Lat, t.Origin.Lng, domain.FormatDate(t.OriginDate)),
		fmt.Sprintf("  To (%.6f, %.6f) on %s", t.Destination.Lat, t.Destination.Lng, domain.FormatDate(t.DestinationDate)),
		fmt.Sprintf("  Route distance: %s", domain.FormatDistance(t.RouteDistanceKm())),
	}
}

func daysLeft(deadline string, now time.Time) string {
	days, ok := domain.DaysUntil(deadline, now)
	switch {
	case !ok:
		return ""
	case days < 0:
		return " (overdue)"
	case days == 1:
		return " (1 day left)"
	default:
		return fmt.Sprintf(" (%d days left)", days)
	}
}

func preview(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= descriptionPreviewLength {
		return string(runes)
	}
	return string(runes[:descriptionPreviewLength]) + "..."
}
