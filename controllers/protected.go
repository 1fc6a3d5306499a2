package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ifmsabrazil/adminpanel/analytics"
	"github.com/ifmsabrazil/adminpanel/assemblies"
	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/utils"
)

type actorKey struct{}

// Controller carries what every protected route needs.
type Controller struct {
	Secret  []byte
	Logger  *slog.Logger
	Timeout time.Duration
}

// TimeoutMiddleware bounds each request's context by Timeout. Handlers pass
// the context on to the store, so an expired request fails with
// context.DeadlineExceeded and is answered with a 503.
func (c Controller) TimeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.Timeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenVerifyMiddleware rejects requests without a valid bearer token and
// stores the acting user in the request context.
func (c Controller) TokenVerifyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := utils.VerifyToken(r, c.Secret)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
	})
}

// Actor returns the user the request was authenticated as.
func Actor(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

func (c Controller) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, map[string]string{"status": "ok"})
	}
}

// respondWithServiceError maps domain errors to status codes. Anything
// unexpected is logged and reported as a 500 without internals.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, message string) {
	switch {
	case errors.Is(err, assemblies.ErrInvalidInput),
		errors.Is(err, assemblies.ErrConfirmationMismatch),
		errors.Is(err, analytics.ErrInvalidAssemblyID):
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
	case errors.Is(err, assemblies.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: err.Error()})
	case errors.Is(err, assemblies.ErrNotActive):
		utils.RespondWithError(w, http.StatusConflict, models.Error{Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(r.Context(), "request timed out", slog.String("path", r.URL.Path))
		utils.RespondWithError(w, http.StatusServiceUnavailable, models.Error{Message: "request timed out"})
	default:
		logger.ErrorContext(r.Context(), message,
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: message})
	}
}
