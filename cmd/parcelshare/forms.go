package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

var (
	parcelInput     domain.ParcelForm
	travelPlanInput domain.TravelPlanForm
)

var addParcelCmd = &cobra.Command{
	Use:   "add-parcel",
	Short: "Post a parcel to send",
	Example: `  parcelshare add-parcel --pickup-lat 52.52 --pickup-lng 13.40 \
    --destination-lat 48.14 --destination-lng 11.58 --weight 500 \
    --pickup-date 2025-03-01 --destination-date 2025-03-05 \
    --deadline 2025-03-06 --description "Books"`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runOneShot(c, func(ctx context.Context, s *oneShot) error {
			scr, err := s.open(ctx, router.PathAddParcel)
			if err != nil {
				return err
			}
			form, ok := scr.(*screen.AddParcel)
			if !ok {
				return errWrongScreen(scr)
			}

			form.Input = parcelInput
			s.run(form.Submit())
			return s.report(form)
		})
	},
}

var addTravelerCmd = &cobra.Command{
	Use:     "add-traveler",
	Aliases: []string{"add-travel-plan"},
	Short:   "Post a travel plan with spare capacity",
	Example: `  parcelshare add-traveler --origin-lat 52.52 --origin-lng 13.40 \
    --destination-lat 48.14 --destination-lng 11.58 \
    --origin-date 2025-03-02 --destination-date 2025-03-02 --capacity 2000`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runOneShot(c, func(ctx context.Context, s *oneShot) error {
			scr, err := s.open(ctx, router.PathAddTravelPlan)
			if err != nil {
				return err
			}
			form, ok := scr.(*screen.AddTravelPlan)
			if !ok {
				return errWrongScreen(scr)
			}

			form.Input = travelPlanInput
			s.run(form.Submit())
			return s.report(form)
		})
	},
}

func init() {
	f := addParcelCmd.Flags()
	f.StringVar(&parcelInput.PickupLat, "pickup-lat", "", "Pickup latitude")
	f.StringVar(&parcelInput.PickupLng, "pickup-lng", "", "Pickup longitude")
	f.StringVar(&parcelInput.DestinationLat, "destination-lat", "", "Destination latitude")
	f.StringVar(&parcelInput.DestinationLng, "destination-lng", "", "Destination longitude")
	f.StringVar(&parcelInput.Weight, "weight", "", "Weight in grams")
	f.StringVar(&parcelInput.PickupDate, "pickup-date", "", "Pickup date, YYYY-MM-DD")
	f.StringVar(&parcelInput.DestinationDate, "destination-date", "", "Delivery date, YYYY-MM-DD")
	f.StringVar(&parcelInput.Deadline, "deadline", "", "Deadline, YYYY-MM-DD")
	f.StringVar(&parcelInput.Description, "description", "", "What is inside")

	f = addTravelerCmd.Flags()
	f.StringVar(&travelPlanInput.OriginLat, "origin-lat", "", "Origin latitude")
	f.StringVar(&travelPlanInput.OriginLng, "origin-lng", "", "Origin longitude")
	f.StringVar(&travelPlanInput.DestinationLat, "destination-lat", "", "Destination latitude")
	f.StringVar(&travelPlanInput.DestinationLng, "destination-lng", "", "Destination longitude")
	f.StringVar(&travelPlanInput.OriginDate, "origin-date", "", "Departure date, YYYY-MM-DD")
	f.StringVar(&travelPlanInput.DestinationDate, "destination-date", "", "Arrival date, YYYY-MM-DD")
	f.StringVar(&travelPlanInput.Capacity, "capacity", "", "Spare capacity in grams")
}
