package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/infra/token"
)

var (
	loginUsername      string
	loginPassword      string
	loginPasswordStdin bool

	signupInput         domain.Registration
	signupPasswordStdin bool
	signupRole          string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Example: `  parcelshare login --username alice --password-stdin < password.txt
  echo "$PASSWORD" | parcelshare login -u alice --password-stdin`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		password, err := readPassword(c, loginPassword, loginPasswordStdin)
		if err != nil {
			return err
		}

		return runOneShot(c, func(ctx context.Context, s *oneShot) error {
			scr, err := s.open(ctx, router.PathLogin)
			if err != nil {
				return err
			}
			login := scr.(*screen.Login)

			login.Input = domain.Credentials{Username: loginUsername, Password: password}
			s.run(login.Submit())
			if err := s.report(login); err != nil {
				return err
			}
			if !s.sessions.IsAuthenticated() {
				return errors.New("login failed")
			}

			sess := s.sessions.Session()
			fmt.Fprintf(s.out, "Welcome, %s\n", sess.Role)
			return nil
		})
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	Example: `  parcelshare signup --name "Alice Doe" --email alice@example.com \
    --username alice --role traveler --password-stdin < password.txt`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		password, err := readPassword(c, signupInput.Password, signupPasswordStdin)
		if err != nil {
			return err
		}
		role, err := parseRole(signupRole)
		if err != nil {
			return err
		}

		return runOneShot(c, func(ctx context.Context, s *oneShot) error {
			scr, err := s.open(ctx, router.PathSignup)
			if err != nil {
				return err
			}
			signup := scr.(*screen.Signup)

			signup.Input = signupInput
			signup.Input.Password = password
			if signup.Input.ConfirmPassword == "" {
				signup.Input.ConfirmPassword = password
			}
			signup.SelectRole(role)

			s.run(signup.Submit())
			return s.report(signup)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runOneShot(c, func(ctx context.Context, s *oneShot) error {
			r, err := s.container.Router.Load()
			if err != nil {
				return err
			}

			r.Logout(ctx)
			fmt.Fprintln(s.out, "Logged out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored session",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runOneShot(c, func(_ context.Context, s *oneShot) error {
			sess := s.sessions.Session()
			if !sess.IsAuthenticated() {
				fmt.Fprintln(s.out, "Not signed in")
				return nil
			}

			chrome := router.SelectChrome(true, sess.Role)
			fmt.Fprintf(s.out, "Role:    %s (%s)\n", sess.Role, chrome)
			if sess.UserID != nil {
				fmt.Fprintf(s.out, "User ID: %d\n", *sess.UserID)
			} else {
				fmt.Fprintln(s.out, "User ID: unknown")
			}

			claims, err := token.Inspect(sess.Token)
			if err != nil {
				fmt.Fprintln(s.out, "Token:   opaque")
				return nil
			}
			fmt.Fprintf(s.out, "Token:   %s\n", claims.Describe(time.Now()))
			return nil
		})
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password; prefer --password-stdin")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
	_ = loginCmd.MarkFlagRequired("username")

	signupCmd.Flags().StringVar(&signupInput.Name, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signupInput.Email, "email", "", "Email")
	signupCmd.Flags().StringVarP(&signupInput.Username, "username", "u", "", "Username")
	signupCmd.Flags().StringVarP(&signupInput.Password, "password", "p", "", "Password; prefer --password-stdin")
	signupCmd.Flags().StringVar(&signupInput.ConfirmPassword, "confirm-password", "", "Password confirmation (default: the password)")
	signupCmd.Flags().BoolVar(&signupPasswordStdin, "password-stdin", false, "Read the password from stdin")
	signupCmd.Flags().StringVar(&signupRole, "role", "sender", "Account role: sender or traveler")
}

func readPassword(c *cobra.Command, flag string, fromStdin bool) (string, error) {
	if !fromStdin {
		return flag, nil
	}
	if flag != "" {
		return "", errors.New("--password and --password-stdin are mutually exclusive")
	}

	line, err := bufio.NewReader(c.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseRole(role string) (domain.Role, error) {
	switch strings.ToLower(role) {
	case "sender", "parcel", strings.ToLower(string(domain.RoleTagParcel)):
		return domain.RoleTagParcel, nil
	case "traveler", strings.ToLower(string(domain.RoleTagTraveler)):
		return domain.RoleTagTraveler, nil
	default:
		return "", fmt.Errorf("unknown role %q: want sender or traveler", role)
	}
}
