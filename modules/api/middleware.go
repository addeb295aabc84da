package api

import (
	domain "github.com/example/user-admin-api/domain/user"
	"github.com/example/user-admin-api/modules/auth"
	"github.com/gofiber/fiber/v2"
)

const (
	// ClaimsContextKey is the key used to store token claims in the
	// Fiber context.
	ClaimsContextKey = "claims"

	missingTokenMessage = "JWT Token is missing."
	invalidTokenMessage = "Invalid JWT Token."
	forbiddenMessage    = "UNAUTHORIZED"
)

// RequireAuthenticated gates a route behind token verification. Any valid
// token is accepted regardless of its permission flag.
func RequireAuthenticated(authPort auth.Port) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errMessage := authenticate(c, authPort)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Status:  fiber.StatusUnauthorized,
				Message: errMessage,
			})
		}

		c.Locals(ClaimsContextKey, claims)
		return c.Next()
	}
}

// RequireAdmin gates a route behind token verification plus the admin
// permission. An authenticated caller without the permission is rejected
// with 401 and a distinct message; the token itself was valid.
func RequireAdmin(authPort auth.Port) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errMessage := authenticate(c, authPort)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Status:  fiber.StatusUnauthorized,
				Message: errMessage,
			})
		}

		if !claims.Admin {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Status:  fiber.StatusUnauthorized,
				Message: forbiddenMessage,
			})
		}

		c.Locals(ClaimsContextKey, claims)
		return c.Next()
	}
}

// authenticate extracts and verifies the bearer token. It returns the
// claims, or nil and the client-facing failure message. Which check
// failed beyond "header present" is never leaked.
func authenticate(c *fiber.Ctx, authPort auth.Port) (*domain.Claims, string) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, missingTokenMessage
	}

	claims, err := authPort.ValidateHeader(c.UserContext(), header)
	if err != nil {
		return nil, invalidTokenMessage
	}

	return claims, ""
}
