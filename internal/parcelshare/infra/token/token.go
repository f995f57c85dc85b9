// Package token reads the claims of the session token for display. The
// signature is not verified: the backend remains the only authority on the
// token.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a jwt")

type Claims struct {
	Subject   string
	Role      string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

func Inspect(token string) (Claims, error) {
	var c claims
	_, _, err := jwt.NewParser().ParseUnverified(token, &c)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	return Claims{
		Subject:   c.Subject,
		Role:      c.Role,
		IssuedAt:  numericTime(c.IssuedAt),
		ExpiresAt: numericTime(c.ExpiresAt),
	}, nil
}

func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// Describe is a one-line summary of the claims relative to now.
func (c Claims) Describe(now time.Time) string {
	subject := c.Subject
	if subject == "" {
		subject = "unknown user"
	}

	switch {
	case c.ExpiresAt == nil:
		return fmt.Sprintf("Signed in as %s", subject)
	case c.Expired(now):
		return fmt.Sprintf("Signed in as %s, token expired %s ago", subject, now.Sub(*c.ExpiresAt).Round(time.Minute))
	default:
		return fmt.Sprintf("Signed in as %s, token expires in %s", subject, c.ExpiresAt.Sub(now).Round(time.Minute))
	}
}

// StatusLine describes token, or returns "" when it cannot be read.
func StatusLine(token string, now time.Time) string {
	c, err := Inspect(token)
	if err != nil {
		return ""
	}
	return c.Describe(now)
}

func numericTime(d *jwt.NumericDate) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
