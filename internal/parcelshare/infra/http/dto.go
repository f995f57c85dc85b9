package http

import (
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

type LoginIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOut struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID *int64 `json:"userid"`
}

type RegisterIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AddParcelIn struct {
	PickupLat       float64 `json:"pickupLat"`
	PickupLng       float64 `json:"pickupLng"`
	DestinationLat  float64 `json:"destinationLat"`
	DestinationLng  float64 `json:"destinationLng"`
	Weight          int     `json:"weight"`
	PickupDate      string  `json:"pickupDate"`
	DestinationDate string  `json:"destinationDate"`
	Deadline        string  `json:"deadline"`
	Description     string  `json:"description"`
	CreatorID       int64   `json:"parcelcreaterid"`
}

type AddTravelerIn struct {
	OriginLat       float64 `json:"originLat"`
	OriginLng       float64 `json:"originLng"`
	DestinationLat  float64 `json:"destinationLat"`
	DestinationLng  float64 `json:"destinationLng"`
	OriginDate      string  `json:"originDate"`
	DestinationDate string  `json:"destinationDate"`
	Weight          int     `json:"weight"`
	CreatorID       int64   `json:"travelercreatorid"`
}

type ParcelOut struct {
	ID              int64   `json:"id"`
	PickupLat       float64 `json:"pickupLat"`
	PickupLng       float64 `json:"pickupLng"`
	DestinationLat  float64 `json:"destinationLat"`
	DestinationLng  float64 `json:"destinationLng"`
	Weight          int     `json:"weight"`
	PickupDate      string  `json:"pickupDate"`
	DestinationDate string  `json:"destinationDate"`
	Deadline        string  `json:"deadline"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	CreatorID       *int64  `json:"parcelcreaterid"`
}

type TravelPlanOut struct {
	ID              int64   `json:"id"`
	OriginLat       float64 `json:"originLat"`
	OriginLng       float64 `json:"originLng"`
	DestinationLat  float64 `json:"destinationLat"`
	DestinationLng  float64 `json:"destinationLng"`
	OriginDate      string  `json:"originDate"`
	DestinationDate string  `json:"destinationDate"`
	Weight          int     `json:"weight"`
	Status          string  `json:"status"`
	CreatorID       *int64  `json:"travelercreatorid"`
}

type ParcelRequestOut struct {
	MatchID  int64          `json:"parcelmatchid"`
	Parcel   *ParcelOut     `json:"parcel"`
	Traveler *TravelPlanOut `json:"traveler"`
}

type ParcelMatchOut struct {
	ID       int64          `json:"id"`
	Parcel   *ParcelOut     `json:"parcel"`
	Traveler *TravelPlanOut `json:"Parcels"`
}

type TravelerMatchOut struct {
	ID     int64      `json:"id"`
	Parcel *ParcelOut `json:"parcel"`
}

type ErrorOut struct {
	Message string `json:"message"`
}

func toLoginIn(c domain.Credentials) LoginIn {
	return LoginIn{Username: c.Username, Password: c.Password}
}

func toRegisterIn(r domain.Registration) RegisterIn {
	return RegisterIn{
		Name:     r.Name,
		Email:    r.Email,
		Username: r.Username,
		Password: r.Password,
		Role:     string(r.Role),
	}
}

func toAddParcelIn(p domain.NewParcel) AddParcelIn {
	return AddParcelIn{
		PickupLat:       p.Pickup.Lat,
		PickupLng:       p.Pickup.Lng,
		DestinationLat:  p.Destination.Lat,
		DestinationLng:  p.Destination.Lng,
		Weight:          p.WeightGrams,
		PickupDate:      p.PickupDate,
		DestinationDate: p.DestinationDate,
		Deadline:        p.Deadline,
		Description:     p.Description,
		CreatorID:       p.CreatorID,
	}
}

func toAddTravelerIn(t domain.NewTravelPlan) AddTravelerIn {
	return AddTravelerIn{
		OriginLat:       t.Origin.Lat,
		OriginLng:       t.Origin.Lng,
		DestinationLat:  t.Destination.Lat,
		DestinationLng:  t.Destination.Lng,
		OriginDate:      t.OriginDate,
		DestinationDate: t.DestinationDate,
		Weight:          t.CapacityGrams,
		CreatorID:       t.CreatorID,
	}
}

func (o LoginOut) toResult() backend.LoginResult {
	return backend.LoginResult{
		Token:  o.Token,
		Role:   domain.Role(o.Role),
		UserID: o.UserID,
	}
}

func (o *ParcelOut) toParcel() *domain.Parcel {
	if o == nil {
		return nil
	}
	return &domain.Parcel{
		ID:              o.ID,
		Pickup:          domain.Point{Lat: o.PickupLat, Lng: o.PickupLng},
		Destination:     domain.Point{Lat: o.DestinationLat, Lng: o.DestinationLng},
		WeightGrams:     o.Weight,
		PickupDate:      o.PickupDate,
		DestinationDate: o.DestinationDate,
		Deadline:        o.Deadline,
		Description:     o.Description,
		Status:          domain.Status(o.Status),
		CreatorID:       o.CreatorID,
	}
}

func (o *TravelPlanOut) toTravelPlan() *domain.TravelPlan {
	if o == nil {
		return nil
	}
	return &domain.TravelPlan{
		ID:              o.ID,
		Origin:          domain.Point{Lat: o.OriginLat, Lng: o.OriginLng},
		Destination:     domain.Point{Lat: o.DestinationLat, Lng: o.DestinationLng},
		OriginDate:      o.OriginDate,
		DestinationDate: o.DestinationDate,
		CapacityGrams:   o.Weight,
		Status:          domain.Status(o.Status),
		CreatorID:       o.CreatorID,
	}
}

func toParcels(out []ParcelOut) []domain.Parcel {
	result := make([]domain.Parcel, 0, len(out))
	for i := range out {
		result = append(result, *out[i].toParcel())
	}
	return result
}

func toTravelPlans(out []TravelPlanOut) []domain.TravelPlan {
	result := make([]domain.TravelPlan, 0, len(out))
	for i := range out {
		result = append(result, *out[i].toTravelPlan())
	}
	return result
}

func toParcelRequests(out []ParcelRequestOut) []domain.ParcelRequest {
	result := make([]domain.ParcelRequest, 0, len(out))
	for _, o := range out {
		result = append(result, domain.ParcelRequest{
			MatchID:  o.MatchID,
			Parcel:   o.Parcel.toParcel(),
			Traveler: o.Traveler.toTravelPlan(),
		})
	}
	return result
}

func toParcelMatches(out []ParcelMatchOut) []domain.ParcelMatch {
	result := make([]domain.ParcelMatch, 0, len(out))
	for _, o := range out {
		result = append(result, domain.ParcelMatch{
			ID:       o.ID,
			Parcel:   o.Parcel.toParcel(),
			Traveler: o.Traveler.toTravelPlan(),
		})
	}
	return result
}

func toTravelerMatches(out []TravelerMatchOut) []domain.TravelerMatch {
	result := make([]domain.TravelerMatch, 0, len(out))
	for _, o := range out {
		result = append(result, domain.TravelerMatch{
			ID:     o.ID,
			Parcel: o.Parcel.toParcel(),
		})
	}
	return result
}
