package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kittens-api/internal/auth"
	userdomain "kittens-api/internal/domain/user"
	"kittens-api/pkg/logger"
)

type contextKey int

const (
	identityKey contextKey = iota
)

type TokenParser interface {
	ParseAccess(token string) (auth.Identity, error)
}

// UserLookup confirms that the user behind a token still exists.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*userdomain.User, error)
}

type BearerAuth struct {
	tokens TokenParser
	users  UserLookup
	log    logger.Logger
}

func NewBearerAuth(tokens TokenParser, users UserLookup, log logger.Logger) *BearerAuth {
	return &BearerAuth{
		tokens: tokens,
		users:  users,
		log:    log,
	}
}

func (a *BearerAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeError(w, http.StatusUnauthorized, "not_authenticated", "authentication credentials were not provided")
			return
		}

		identity, err := a.tokens.ParseAccess(token)
		if err != nil {
			unauthorized(w)
			return
		}

		found, err := a.users.GetByID(r.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				a.log.BusinessError("auth: token user not found", err, "user_id", identity.UserID)
				unauthorized(w)
				return
			}
			a.log.InternalError("auth: load token user failed", err, "user_id", identity.UserID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		identity.Username = found.Username

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	if !ok || identity.UserID <= 0 {
		return auth.Identity{}, false
	}
	return identity, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
