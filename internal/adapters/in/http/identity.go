package http

import (
	"net/http"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderAccountID carries the caller's resolved account identifier.
	HeaderAccountID = "X-Account-Id"

	// HeaderAccountRole carries the caller's resolved role literal.
	HeaderAccountRole = "X-Account-Role"

	callerContextKey = "caller"
)

// CallerMiddleware resolves the caller identity from request headers and
// stores it in the request context. Token validation happens upstream; these
// headers are the already-resolved identity, so a missing or malformed pair
// is an authentication failure, not bad input.
func CallerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get(HeaderAccountID)
			rawRole := ctx.Request().Header.Get(HeaderAccountRole)

			if rawID == "" || rawRole == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "caller identity headers are missing",
				})
			}

			accountID, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "caller account id is not a valid UUID",
				})
			}

			role, err := account.RoleFromString(rawRole)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "caller role is not recognized",
				})
			}

			caller, err := identity.NewCallerIdentity(accountID, role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "caller identity is invalid",
				})
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

// callerFromContext returns the identity stored by CallerMiddleware.
func callerFromContext(ctx echo.Context) (identity.CallerIdentity, bool) {
	caller, ok := ctx.Get(callerContextKey).(identity.CallerIdentity)
	return caller, ok
}
