package middleware

import (
	"context"
	"fmt"

	jwtpkg "github.com/calldeck/calldeck/internal/pkg/jwt"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "auth_token"

// AccountFinder loads the current account for a session. The middleware
// re-fetches the account on every request so role checks always see current
// authorization state; the token is only a stable identity reference.
type AccountFinder interface {
	GetUserByIDAndEmail(ctx context.Context, id, email string) (*models.User, error)
}

// SessionAuthMiddleware creates a middleware authenticating the session cookie
func SessionAuthMiddleware(cfg models.JWTConfig, finder AccountFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return utils.UnauthorizedResponse(c, "Unauthorized: token not available")
			}

			claims, err := jwtpkg.ValidateToken(cookie.Value, cfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Unauthorized: invalid token")
			}

			id, ok := (*claims)["_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Unauthorized: invalid token")
			}
			email, ok := (*claims)["email"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Unauthorized: invalid token")
			}

			user, err := finder.GetUserByIDAndEmail(
				c.Request().Context(),
				fmt.Sprintf("%v", id),
				fmt.Sprintf("%v", email),
			)
			if err != nil || user == nil {
				return utils.UnauthorizedResponse(c, "Unauthorized: user not found")
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated account from the Echo context
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get("user").(*models.User)
	return user, ok
}
