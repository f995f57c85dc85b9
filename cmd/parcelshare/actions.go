package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
)

var acceptPlanID int64

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept a parcel request or a suggested parcel",
}

var acceptRequestCmd = &cobra.Command{
	Use:   "request <matchID>",
	Short: "Accept a request a traveler sent for your parcel",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		matchID, err := parseID("match", args[0])
		if err != nil {
			return err
		}

		return runListAction(c, router.PathParcelRequests, func(scr screen.Screen) (screen.Task, error) {
			requests, ok := scr.(*screen.ParcelRequests)
			if !ok {
				return nil, errWrongScreen(scr)
			}
			return requests.Accept(matchID), nil
		})
	},
}

var acceptParcelCmd = &cobra.Command{
	Use:   "parcel <parcelID> --plan <travelPlanID>",
	Short: "Take a suggested parcel onto one of your travel plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		parcelID, err := parseID("parcel", args[0])
		if err != nil {
			return err
		}

		return runListAction(c, router.PathTravelerSuggestions, func(scr screen.Screen) (screen.Task, error) {
			suggestions, ok := scr.(*screen.TravelerSuggestions)
			if !ok {
				return nil, errWrongScreen(scr)
			}
			return suggestions.Accept(parcelID, acceptPlanID), nil
		})
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Reject an accepted request or a requested parcel",
}

var rejectAcceptedCmd = &cobra.Command{
	Use:   "accepted <matchID>",
	Short: "Reject a request you accepted earlier",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		matchID, err := parseID("match", args[0])
		if err != nil {
			return err
		}

		return runListAction(c, router.PathParcelAccepted, func(scr screen.Screen) (screen.Task, error) {
			accepted, ok := scr.(*screen.ParcelAccepted)
			if !ok {
				return nil, errWrongScreen(scr)
			}
			return accepted.Reject(matchID), nil
		})
	},
}

var rejectParcelCmd = &cobra.Command{
	Use:   "parcel <parcelID>",
	Short: "Withdraw from a parcel you requested",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		parcelID, err := parseID("parcel", args[0])
		if err != nil {
			return err
		}

		return runListAction(c, router.PathTravelerRequests, func(scr screen.Screen) (screen.Task, error) {
			requests, ok := scr.(*screen.TravelerRequests)
			if !ok {
				return nil, errWrongScreen(scr)
			}
			return requests.Reject(parcelID), nil
		})
	},
}

func init() {
	acceptParcelCmd.Flags().Int64Var(&acceptPlanID, "plan", 0, "Travel plan to take the parcel on (required)")
	_ = acceptParcelCmd.MarkFlagRequired("plan")

	acceptCmd.AddCommand(acceptRequestCmd)
	acceptCmd.AddCommand(acceptParcelCmd)
	rejectCmd.AddCommand(rejectAcceptedCmd)
	rejectCmd.AddCommand(rejectParcelCmd)
}

// runListAction opens the list at path, then runs the action built by act
// against the loaded screen.
func runListAction(c *cobra.Command, path string, act func(screen.Screen) (screen.Task, error)) error {
	return runOneShot(c, func(ctx context.Context, s *oneShot) error {
		scr, err := s.open(ctx, path)
		if err != nil {
			return err
		}
		if err := s.report(scr); err != nil {
			return err
		}

		task, err := act(scr)
		if err != nil {
			return err
		}
		if task == nil {
			if err := s.report(scr); err != nil {
				return err
			}
			return fmt.Errorf("another action is in progress")
		}

		s.run(task)
		return s.report(scr)
	})
}

func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, arg)
	}
	return id, nil
}

func errWrongScreen(scr screen.Screen) error {
	return fmt.Errorf("unexpected screen %q", scr.Route().Path)
}
