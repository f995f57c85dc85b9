package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 4
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidationError names the first invalid form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

type Registration struct {
	Name            string
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	Role            Role
}

// Validate checks fields in form order and reports the first failure.
func (r Registration) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return invalid("name", "Full name is required")
	case strings.TrimSpace(r.Email) == "":
		return invalid("email", "Email is required")
	case !emailPattern.MatchString(r.Email):
		return invalid("email", "Please enter a valid email address")
	case strings.TrimSpace(r.Username) == "":
		return invalid("username", "Username is required")
	case len(r.Username) < MinUsernameLength:
		return invalid("username", fmt.Sprintf("Username must be at least %d characters long", MinUsernameLength))
	case r.Password == "":
		return invalid("password", "Password is required")
	case len(r.Password) < MinPasswordLength:
		return invalid("password", fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	case r.Password != r.ConfirmPassword:
		return invalid("confirmPassword", "Passwords do not match")
	case r.Role == "":
		return invalid("role", "Please select a role")
	}

	return nil
}

type Credentials struct {
	Username string
	Password string
}

type NewParcel struct {
	Pickup          Point
	Destination     Point
	WeightGrams     int
	PickupDate      string
	DestinationDate string
	Deadline        string
	Description     string
	CreatorID       int64
}

type NewTravelPlan struct {
	Origin          Point
	Destination     Point
	OriginDate      string
	DestinationDate string
	CapacityGrams   int
	CreatorID       int64
}

// ParcelForm is the raw text entered into the add-parcel form.
type ParcelForm struct {
	PickupLat       string
	PickupLng       string
	DestinationLat  string
	DestinationLng  string
	Weight          string
	PickupDate      string
	DestinationDate string
	Deadline        string
	Description     string
}

func (f ParcelForm) Parse(creatorID int64) (NewParcel, error) {
	var p formParser
	parcel := NewParcel{
		Pickup:          Point{Lat: p.float("pickupLat", f.PickupLat), Lng: p.float("pickupLng", f.PickupLng)},
		Destination:     Point{Lat: p.float("destinationLat", f.DestinationLat), Lng: p.float("destinationLng", f.DestinationLng)},
		WeightGrams:     p.int("weight", f.Weight),
		PickupDate:      p.date("pickupDate", f.PickupDate),
		DestinationDate: p.date("destinationDate", f.DestinationDate),
		Deadline:        p.date("deadline", f.Deadline),
		Description:     strings.TrimSpace(f.Description),
		CreatorID:       creatorID,
	}
	if p.err != nil {
		return NewParcel{}, p.err
	}
	return parcel, nil
}

// TravelPlanForm is the raw text entered into the add-travel-plan form.
type TravelPlanForm struct {
	OriginLat       string
	OriginLng       string
	DestinationLat  string
	DestinationLng  string
	OriginDate      string
	DestinationDate string
	Capacity        string
}

func (f TravelPlanForm) Parse(creatorID int64) (NewTravelPlan, error) {
	var p formParser
	plan := NewTravelPlan{
		Origin:          Point{Lat: p.float("originLat", f.OriginLat), Lng: p.float("originLng", f.OriginLng)},
		Destination:     Point{Lat: p.float("destinationLat", f.DestinationLat), Lng: p.float("destinationLng", f.DestinationLng)},
		OriginDate:      p.date("originDate", f.OriginDate),
		DestinationDate: p.date("destinationDate", f.DestinationDate),
		CapacityGrams:   p.int("weight", f.Capacity),
		CreatorID:       creatorID,
	}
	if p.err != nil {
		return NewTravelPlan{}, p.err
	}
	return plan, nil
}

// formParser keeps the first error so that fields are reported in form order.
type formParser struct {
	err error
}

func (p *formParser) float(field, value string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		p.err = invalid(field, fmt.Sprintf("%s must be a number", field))
	}
	return v
}

func (p *formParser) int(field, value string) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		p.err = invalid(field, fmt.Sprintf("%s must be a whole number", field))
	}
	return v
}

func (p *formParser) date(field, value string) string {
	if p.err != nil {
		return ""
	}
	value = strings.TrimSpace(value)
	if _, ok := ParseDate(value); !ok {
		p.err = invalid(field, fmt.Sprintf("%s must be a date like 2006-01-02", field))
	}
	return value
}
