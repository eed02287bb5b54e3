package auth

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"logistics/internal/entities"
	"logistics/internal/handlers/rest/response"
	pkgauth "logistics/internal/pkg/auth"
	"logistics/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware кладет в контекст аккаунт из токена сессии.
// Браузер не умеет ставить заголовки на websocket, поэтому токен принимается и из ?token=.
func Middleware(log handlerLogger, tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				response.Error(w, log, http.StatusUnauthorized, "sign in required")
				return
			}

			actor, err := tokens.Parse(raw)
			if err != nil {
				if errors.Is(err, pkgauth.ErrTokenExpired) {
					response.Error(w, log, http.StatusUnauthorized, "session expired, sign in again")
					return
				}
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Debug("rejected token")
				response.Error(w, log, http.StatusUnauthorized, "invalid session token, sign in again")
				return
			}

			next.ServeHTTP(w, r.WithContext(pkgauth.WithActor(r.Context(), *actor)))
		})
	}
}

// RequireRoles пропускает только перечисленные роли, ставится после Middleware.
func RequireRoles(log handlerLogger, roles ...entities.AccountRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := pkgauth.ActorFromContext(r.Context())
			if !ok {
				response.Error(w, log, http.StatusUnauthorized, "sign in required")
				return
			}
			if !slices.Contains(roles, actor.Role) {
				response.Error(w, log, http.StatusForbidden, "this action is not available for role "+actor.Role.String())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return r.URL.Query().Get("token")
}
