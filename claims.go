package askademy

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claims payload the backend embeds in the bearer
// credential: subject is the account email, role the platform role, and
// userId the numeric account id. Registered claims (exp, iat, iss) ride
// along for display; the client never enforces them.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserRole  string `json:"role,omitempty"`
	AccountID int64  `json:"userId,omitempty"`
}

// Subject returns the subject claim (the account email).
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Role returns the raw role claim.
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// Identity validates the claims schema and derives an Identity. It fails
// closed: a missing subject or an unknown role yields no identity at all,
// never a partially populated one.
func (c *TokenClaims) Identity() (Identity, error) {
	if c.RegisteredClaims.Subject == "" {
		return Identity{}, decodeFailure("missing required claim: sub")
	}

	role, ok := ParseRole(c.UserRole)
	if !ok {
		return Identity{}, decodeFailure("missing or unknown role claim")
	}

	return Identity{
		AccountID: c.AccountID,
		Email:     c.RegisteredClaims.Subject,
		Role:      role,
	}, nil
}
