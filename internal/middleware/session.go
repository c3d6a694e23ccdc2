package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest-api/internal/utils"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

// Session returns an Echo middleware that authenticates the request from
// its session cookie.  The two failure modes are deliberately asymmetric:
//
//   - no cookie at all: the request proceeds anonymous and each handler
//     decides whether that is acceptable (the profile endpoint, for
//     example, answers null for anonymous callers);
//   - a cookie that fails verification: the request is rejected with a
//     clean 401, never treated as anonymous.
//
// On success the subject id and email are stored in the context under
// "user_id" and "email" for handlers downstream.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return next(c) // anonymous
			}
			claims, err := utils.ParseSessionToken(secret, ck.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests with 401.  It assumes the
// Session middleware ran earlier in the chain and stored the subject id
// under "user_id" when a valid cookie was present.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get("user_id") == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}
			return next(c)
		}
	}
}
