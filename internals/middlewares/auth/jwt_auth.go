package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Locals keys hydrated for downstream handlers.
const (
	LocUserID = "user_id"
	LocEmail  = "user_email"
	LocRole   = "user_role"
	LocClaims = "jwt_claims"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // accept the access_token cookie when no Bearer header
}

// AuthJWT validates the access token and stores identity in Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if typ, _ := claims["type"].(string); typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
		}

		sub := strClaim(claims, "sub")
		if sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token missing user identity")
		}

		c.Locals(LocClaims, claims)
		c.Locals(LocUserID, sub)
		c.Locals(LocEmail, strClaim(claims, "email"))
		c.Locals(LocRole, strClaim(claims, "role"))
		return c.Next()
	}
}

// RequireRole gates a route group to one role. Runs after AuthJWT.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals(LocRole).(string); r != role {
			return fiber.NewError(fiber.StatusForbidden, "Role '"+role+"' required")
		}
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
