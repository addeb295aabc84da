package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/example/user-admin-api/domain/user"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when no Authorization header is present.
	ErrMissingToken = errors.New("jwt token is missing")
	// ErrInvalidToken is returned for every other verification failure.
	// A missing token part, a bad signature and an expired token are
	// deliberately indistinguishable to the caller.
	ErrInvalidToken = errors.New("invalid jwt token")
	// ErrNoSecret is returned when no signing secret is configured.
	ErrNoSecret = errors.New("no jwt signing secret configured")
)

// TokenConfig holds token issuance configuration.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// adminFlag is the permission claim. It is issued as a native JSON
// boolean but also decodes the legacy string forms "true"/"false" found
// in previously issued tokens.
type adminFlag bool

// MarshalJSON encodes the flag as a plain boolean.
func (f adminFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// UnmarshalJSON accepts both boolean and legacy string encodings.
func (f *adminFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = adminFlag(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("permission claim: %w", err)
	}
	switch s {
	case "true":
		*f = true
	case "false":
		*f = false
	default:
		return fmt.Errorf("permission claim: unexpected value %q", s)
	}
	return nil
}

// tokenClaims are the claims carried by an issued token. The permission
// claim keeps the legacy wire name "auth".
type tokenClaims struct {
	Admin adminFlag `json:"auth"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed, time-bounded bearer tokens.
type TokenManager struct {
	config TokenConfig
}

// NewTokenManager creates a new TokenManager with the given configuration.
func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{
		config: config,
	}
}

// Issue creates a signed token for the given subject carrying its
// permission flag. The token expires after the configured TTL.
func (m *TokenManager) Issue(subject string, isAdmin bool) (string, error) {
	if m.config.Secret == "" {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := tokenClaims{
		Admin: adminFlag(isAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.Secret))
}

// Verify checks the token carried by an Authorization header of the form
// "<scheme> <token>". The scheme is ignored. It returns the decoded
// claims, ErrMissingToken for an empty header, or ErrInvalidToken for
// any other failure.
func (m *TokenManager) Verify(authHeader string) (*domain.Claims, error) {
	if authHeader == "" {
		return nil, ErrMissingToken
	}

	_, raw, found := strings.Cut(authHeader, " ")
	if !found || raw == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &domain.Claims{
		Subject: claims.Subject,
		Admin:   bool(claims.Admin),
	}, nil
}

// TTL returns the configured token lifetime in seconds.
func (m *TokenManager) TTL() int64 {
	return int64(m.config.TTL.Seconds())
}
