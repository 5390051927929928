package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/factflip/backend/internal/domain/deck"
	"github.com/factflip/backend/internal/service"
	"github.com/factflip/backend/internal/srs"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	svc            *service.StudyService
	logger         *slog.Logger
	validate       *validator.Validate
	maxUploadBytes int64
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.StudyService, maxUploadBytes int64, logger *slog.Logger) *Handler {
	return &Handler{
		svc:            svc,
		logger:         logger,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		maxUploadBytes: maxUploadBytes,
	}
}

// StatusResponse is the {status, message} envelope used by mutating endpoints.
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty" example:"Deck deleted"`
}

// ErrorResponse is the {error} payload of read endpoints.
type ErrorResponse struct {
	Error string `json:"error" example:"No deck loaded"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a {status:"error", message} response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, StatusResponse{Status: "error", Message: message})
}

// decodeAndValidate decodes the JSON body into req and validates it, first
// with its struct tags and then with its Validate method if it has one.
// It writes a 400 and returns false on failure.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	if v, ok := req.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid " + fe.Field() + ": failed " + fe.Tag() + " check"
	}
	return "invalid request"
}

// handleServiceError maps service errors to HTTP responses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var perr *deck.ParseError
	switch {
	case errors.As(err, &perr):
		respondError(w, http.StatusBadRequest, perr.Reason)
	case errors.Is(err, srs.ErrInvalidQuality):
		respondError(w, http.StatusBadRequest, "Quality must be between 0 and 5")
	case errors.Is(err, service.ErrFactNotFound):
		respondError(w, http.StatusNotFound, "Fact not found")
	case errors.Is(err, service.ErrDeckNotFound):
		respondError(w, http.StatusNotFound, "Deck not found")
	case errors.Is(err, service.ErrNoSession):
		respondError(w, http.StatusNotFound, "No active session")
	case errors.Is(err, service.ErrNoDeck):
		respondError(w, http.StatusConflict, "No deck loaded")
	default:
		h.logger.Error("service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
