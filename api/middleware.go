package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// =============================================================================
// REQUEST LOGGING
// =============================================================================

// requestLogger logs one line per request with the chi request id.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("http request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// =============================================================================
// ACTING USER
// =============================================================================
// There is no login. The acting user id comes from a trusted header and
// falls back to the configured demo user.

type ctxKey int

const actingUserKey ctxKey = iota

// identify resolves the acting user and stores it in the request context.
// An id that names no user is rejected with 401.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(h.UserHeader)
		if id == "" {
			id = h.DemoUserID
		}

		snap, err := h.Store.Load(r.Context())
		if err != nil {
			h.writeDomainError(w, "Failed to load users", err)
			return
		}
		user := hrms.FindUser(snap.Users, id)
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unknown user", &hrms.NotFoundError{Kind: "user", ID: id})
			return
		}

		ctx := context.WithValue(r.Context(), actingUserKey, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actingUser returns the user resolved by identify.
func actingUser(ctx context.Context) hrms.User {
	u, _ := ctx.Value(actingUserKey).(hrms.User)
	return u
}

// requireCap rejects requests whose acting user's role lacks c.
func requireCap(c hrms.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := actingUser(r.Context())
			if !user.Role.Can(c) {
				writeError(w, http.StatusForbidden, "Forbidden", &hrms.CapabilityError{Role: user.Role, Capability: c})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
