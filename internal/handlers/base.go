package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bloghub/backend/internal/apperrors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError translates a domain error into an HTTP status and a
// structured error body. Anything outside the taxonomy is logged and hidden
// behind a generic 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	var (
		notFound     *apperrors.ResourceNotFoundError
		validation   *apperrors.ValidationError
		missingField *apperrors.MissingFieldError
		invalidSort  *apperrors.InvalidSortFieldError
		notEmpty     *apperrors.CategoryNotEmptyError
		roleMissing  *apperrors.RoleNotConfiguredError
	)

	switch {
	case errors.As(err, &notFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation),
		errors.As(err, &missingField),
		errors.As(err, &invalidSort),
		errors.Is(err, apperrors.ErrDuplicateUsername),
		errors.Is(err, apperrors.ErrDuplicateEmail),
		errors.Is(err, apperrors.ErrCommentNotOwned):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		h.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		h.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		h.RespondError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &notEmpty):
		h.RespondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &roleMissing):
		// Seeding was skipped; this is a deployment defect, not a request error
		h.Logger.Error("role registry not seeded", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
	default:
		h.Logger.Error("unhandled service error", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses an integer path parameter, responding 400 on garbage
func (h *BaseHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// queryInt parses an integer query parameter with a default
func (h *BaseHandler) queryInt(w http.ResponseWriter, r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}
