package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
)

var openExpand bool

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Render a screen once and exit",
	Long: `Renders the screen at path once and exits. Protected screens need a
stored session; see "parcelshare login".

Known paths:
` + knownPaths(),
	Example: `  parcelshare open /suggestion
  parcelshare open /traveler-suggestions --expand`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runOneShot(c, func(ctx context.Context, s *oneShot) error {
			scr, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}

			if suggestions, ok := scr.(*screen.TravelerSuggestions); ok && openExpand {
				for _, plan := range suggestions.Items() {
					s.run(suggestions.Expand(plan.ID))
				}
			}

			s.render(scr, openExpand)
			if banner := scr.Banner(); banner.Visible() && banner.Kind == screen.BannerError {
				return errors.New(banner.Text)
			}
			return nil
		})
	},
}

func init() {
	openCmd.Flags().BoolVar(&openExpand, "expand", false, "Show the details of every item")
}

func knownPaths() string {
	var b strings.Builder
	for _, route := range router.Routes() {
		fmt.Fprintf(&b, "  %-22s %s\n", route.Path, route.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
