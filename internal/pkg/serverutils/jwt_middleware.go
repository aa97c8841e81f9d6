package serverutils

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewJwtMiddleware verifies the bearer token and stores the subject claim in
// ctx.Locals("user_id"). The secret comes from configuration, not from the
// environment at request time; an empty secret is a 500, not a 401.
//
// Audience validation is intentionally skipped: tokens are minted by an auth
// provider whose aud claim does not match this service.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := strings.TrimSpace(ctx.Get("Authorization"))
		if authHeader == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token format"})
		}

		// Tokens copied out of dashboards arrive with stray whitespace and
		// invisible characters; strip them before parsing.
		tokenStr := stripNonPrintable(strings.TrimSpace(authHeader[len("Bearer "):]))
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token format"})
		}

		if secret == "" {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "JWT secret not configured"})
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		ctx.Locals("user_id", subject)
		return ctx.Next()
	}
}

func stripNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}
