package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	ephemeral bool
	width     int
)

var rootCmd = &cobra.Command{
	Use:   "parcelshare",
	Short: "ParcelShare client: send parcels with travelers heading your way",
	Long: `ParcelShare connects senders of parcels with travelers who have spare
capacity on their route.

Run "parcelshare ui" for the interactive client, or use the one-shot
commands to sign in, browse a screen and act on requests from scripts.

Configuration is read from the environment and a .env file:
  PARCELSHARE_API_URL       backend base url (default http://localhost:8080)
  PARCELSHARE_STORAGE       session storage: file, bolt or memory
  PARCELSHARE_HOME          config directory for session and logs
  PARCELSHARE_HTTP_TIMEOUT  timeout of backend calls, e.g. 30s
  PARCELSHARE_METRICS_FILE  prometheus textfile written on exit
  LOG_LEVEL                 disabled, debug, info, warn or error`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the session in memory only")
	rootCmd.PersistentFlags().IntVar(&width, "width", 100, "Output width of rendered screens")

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(addParcelCmd)
	rootCmd.AddCommand(addTravelerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
