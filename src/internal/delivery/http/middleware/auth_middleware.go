package middleware

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"benerin-admin-service/src/internal/entity"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/token"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// VerifyBearer extracts the caller identity from the bearer token. Signature
// verification happens at the gateway, this service only decodes the payload
// segment.
func VerifyBearer() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		rawToken := strings.TrimPrefix(authHeader, "Bearer ")
		segments := strings.Split(rawToken, ".")
		if len(segments) != 3 {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		payload, err := base64.RawURLEncoding.DecodeString(segments[1])
		if err != nil {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		var claim token.Claim
		if err := json.Unmarshal(payload, &claim); err != nil || claim.Metadata.UserID == "" {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		ctx.Locals("auth", &claim.Metadata)
		return ctx.Next()
	}
}

// RequireAdmin rejects authenticated callers whose role is not admin.
func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil || entity.NormalizeRole(auth.Role) != entity.RoleAdmin {
			return utils.ResponseError(httpError.NewForbidden(), ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	meta, _ := ctx.Locals("auth").(*token.Metadata)
	return meta
}
