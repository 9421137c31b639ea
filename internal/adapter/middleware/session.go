package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"clubdocs-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HeaderUserID carries the authenticated caller's public user id, as issued
// by the external identity provider.
const HeaderUserID = "Ax-User-Id"

const sessionContextKey = "clubdocs.session"

func profileCacheKey(userID string) string { return "session:profile:" + userID }

// SessionFrom returns the session the middleware resolved for this request.
func SessionFrom(c echo.Context) (user.Session, bool) {
	s, ok := c.Get(sessionContextKey).(user.Session)
	return s, ok
}

// SetSession is for tests that exercise handlers without the middleware.
func SetSession(c echo.Context, s user.Session) { c.Set(sessionContextKey, s) }

// SessionMiddleware resolves the caller's profile (Redis cache first, users
// table second) and injects it as an explicit Session value. Handlers and
// usecases never reach for ambient identity state.
func SessionMiddleware(rdb *redis.Client, users user.Repository, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
			}
			if !reHex32.MatchString(uid) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderUserID})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			if raw, err := rdb.Get(ctx, profileCacheKey(uid)).Bytes(); err == nil {
				var s user.Session
				if json.Unmarshal(raw, &s) == nil && s.UserID == uid {
					c.Set(sessionContextKey, s)
					return next(c)
				}
			}

			u, err := users.GetByUserID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "profile lookup failed"})
			}

			s := user.SessionFor(u)
			if payload, err := json.Marshal(s); err == nil {
				// cache failures are non-fatal; next request falls back to the DB
				_ = rdb.Set(ctx, profileCacheKey(uid), payload, ttl).Err()
			}
			c.Set(sessionContextKey, s)
			return next(c)
		}
	}
}
