package screen

import (
	"context"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

// Field is an editable text input of a form screen.
type Field struct {
	Key    string
	Label  string
	Value  *string
	Secret bool
}

type formMessages struct {
	success string
	denied  string
	generic string
}

// Form submits F parsed into V. The form is reset after a successful submit.
type Form[F, V any] struct {
	base
	Input      F
	submitting bool

	messages formMessages
	parse    func(input F, userID int64) (V, error)
	send     func(ctx context.Context, value V) (string, error)
}

func (f *Form[F, V]) Submitting() bool {
	return f.submitting
}

func (f *Form[F, V]) Submit() Task {
	if f.submitting {
		return nil
	}

	userID, ok := f.userID()
	if !ok {
		f.banner = errorBanner(MessageNoUserID)
		return nil
	}

	value, err := f.parse(f.Input, userID)
	if err != nil {
		f.banner = errorBanner(err.Error())
		return nil
	}

	f.submitting = true
	f.banner = Banner{}
	return func(ctx context.Context) Apply {
		_, err := f.send(ctx, value)
		return func() {
			f.submitting = false
			if err == nil {
				var empty F
				f.Input = empty
				f.banner = successBanner(f.messages.success)
				return
			}

			switch Classify(err) {
			case FailureCancelled:
			case FailureSessionExpired:
				f.deps.Router.HandleSessionExpired(ctx)
				f.banner = errorBanner(MessageSessionExpired)
			case FailureForbidden:
				f.banner = errorBanner(f.messages.denied)
			default:
				f.deps.Logger.WithError(err).Warn(ctx, "failed to submit form")
				f.banner = errorBanner(serverMessageOr(err, f.messages.generic))
			}
		}
	}
}

func serverMessageOr(err error, fallback string) string {
	if msg := backend.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}

type AddParcel struct {
	*Form[domain.ParcelForm, domain.NewParcel]
}

func NewAddParcel(deps *Deps) *AddParcel {
	return &AddParcel{&Form[domain.ParcelForm, domain.NewParcel]{
		base: newBase(deps, router.PathAddParcel),
		messages: formMessages{
			success: "Parcel added successfully!",
			denied:  subject{role: roleParcel}.accessDenied("add parcels"),
			generic: "Failed to add parcel. Please try again.",
		},
		parse: domain.ParcelForm.Parse,
		send:  deps.API.AddParcel,
	}}
}

func (s *AddParcel) Fields() []Field {
	in := &s.Input
	return []Field{
		{Key: "pickupLat", Label: "Pickup latitude", Value: &in.PickupLat},
		{Key: "pickupLng", Label: "Pickup longitude", Value: &in.PickupLng},
		{Key: "destinationLat", Label: "Destination latitude", Value: &in.DestinationLat},
		{Key: "destinationLng", Label: "Destination longitude", Value: &in.DestinationLng},
		{Key: "weight", Label: "Weight (grams)", Value: &in.Weight},
		{Key: "pickupDate", Label: "Pickup date", Value: &in.PickupDate},
		{Key: "destinationDate", Label: "Delivery date", Value: &in.DestinationDate},
		{Key: "deadline", Label: "Deadline", Value: &in.Deadline},
		{Key: "description", Label: "Description", Value: &in.Description},
	}
}

type AddTravelPlan struct {
	*Form[domain.TravelPlanForm, domain.NewTravelPlan]
}

func NewAddTravelPlan(deps *Deps) *AddTravelPlan {
	return &AddTravelPlan{&Form[domain.TravelPlanForm, domain.NewTravelPlan]{
		base: newBase(deps, router.PathAddTravelPlan),
		messages: formMessages{
			success: "Travel plan added successfully!",
			denied:  subject{role: roleTraveler}.accessDenied("add travel plans"),
			generic: "Failed to add travel plan. Please try again.",
		},
		parse: domain.TravelPlanForm.Parse,
		send:  deps.API.AddTravelPlan,
	}}
}

func (s *AddTravelPlan) Fields() []Field {
	in := &s.Input
	return []Field{
		{Key: "originLat", Label: "Origin latitude", Value: &in.OriginLat},
		{Key: "originLng", Label: "Origin longitude", Value: &in.OriginLng},
		{Key: "destinationLat", Label: "Destination latitude", Value: &in.DestinationLat},
		{Key: "destinationLng", Label: "Destination longitude", Value: &in.DestinationLng},
		{Key: "originDate", Label: "Departure date", Value: &in.OriginDate},
		{Key: "destinationDate", Label: "Arrival date", Value: &in.DestinationDate},
		{Key: "weight", Label: "Capacity (grams)", Value: &in.Capacity},
	}
}
