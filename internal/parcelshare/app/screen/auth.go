package screen

import (
	"context"
	"time"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

const SignupRedirectDelay = 2000 * time.Millisecond

type Login struct {
	base
	Input      domain.Credentials
	submitting bool
}

func NewLogin(deps *Deps) *Login {
	return &Login{base: newBase(deps, router.PathLogin)}
}

func (s *Login) Submitting() bool {
	return s.submitting
}

func (s *Login) Fields() []Field {
	return []Field{
		{Key: "username", Label: "Username", Value: &s.Input.Username},
		{Key: "password", Label: "Password", Value: &s.Input.Password, Secret: true},
	}
}

// Submit logs in and stores the session on success.
func (s *Login) Submit() Task {
	if s.submitting {
		return nil
	}
	s.submitting = true
	s.banner = Banner{}
	credentials := s.Input

	return func(ctx context.Context) Apply {
		result, err := s.deps.API.Login(ctx, credentials)
		return func() {
			s.submitting = false
			switch {
			case err != nil && Classify(err) == FailureCancelled:
			case err != nil:
				s.deps.Logger.WithError(err).Info(ctx, "login failed")
				s.banner = errorBanner(serverMessageOr(err, "Login failed. Please check your credentials."))
			case result.Token == "":
				s.banner = errorBanner("Invalid response from server - no token received")
			default:
				s.deps.Sessions.Set(ctx, domain.Session{
					Token:  result.Token,
					Role:   result.Role,
					UserID: result.UserID,
				})
				s.Input = domain.Credentials{}
				s.deps.Router.Navigate(router.PathHome)
			}
		}
	}
}

type Signup struct {
	base
	Input      domain.Registration
	submitting bool
}

func NewSignup(deps *Deps) *Signup {
	return &Signup{
		base:  newBase(deps, router.PathSignup),
		Input: domain.Registration{Role: domain.RoleTagParcel},
	}
}

func (s *Signup) Submitting() bool {
	return s.submitting
}

func (s *Signup) Fields() []Field {
	in := &s.Input
	return []Field{
		{Key: "name", Label: "Full name", Value: &in.Name},
		{Key: "email", Label: "Email", Value: &in.Email},
		{Key: "username", Label: "Username", Value: &in.Username},
		{Key: "password", Label: "Password", Value: &in.Password, Secret: true},
		{Key: "confirmPassword", Label: "Confirm password", Value: &in.ConfirmPassword, Secret: true},
	}
}

// Roles lists the roles offered at registration.
func (s *Signup) Roles() []domain.Role {
	return []domain.Role{domain.RoleTagParcel, domain.RoleTagTraveler}
}

func (s *Signup) SelectRole(role domain.Role) {
	s.Input.Role = role
}

// Submit validates the form locally; nothing is sent while it is invalid.
func (s *Signup) Submit() Task {
	if s.submitting {
		return nil
	}

	err := s.Input.Validate()
	if err != nil {
		s.banner = errorBanner(err.Error())
		return nil
	}

	s.submitting = true
	s.banner = Banner{}
	registration := s.Input

	return func(ctx context.Context) Apply {
		_, err := s.deps.API.Register(ctx, registration)
		return func() {
			s.submitting = false
			if err == nil {
				s.Input = domain.Registration{Role: domain.RoleTagParcel}
				s.banner = successBanner("Account created successfully! Redirecting to login...")
				s.deps.Router.NavigateAfter(SignupRedirectDelay, router.PathLogin)
				return
			}

			switch Classify(err) {
			case FailureCancelled:
			case FailureNetwork:
				s.banner = errorBanner("Network error. Please check your connection and try again.")
			default:
				s.deps.Logger.WithError(err).Info(ctx, "registration failed")
				s.banner = errorBanner(serverMessageOr(err, "Registration failed. Please try again."))
			}
		}
	}
}
