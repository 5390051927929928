package api

import (
	"errors"
	"net/http"
	"time"

	studysession "github.com/factflip/backend/internal/domain/study_session"
	"github.com/factflip/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Mode      string   `json:"mode" validate:"omitempty,oneof=spaced random sequential" example:"spaced"`
	FactLimit *int     `json:"fact_limit,omitempty" validate:"omitempty,min=0" example:"20"`
	TimeLimit *int     `json:"time_limit,omitempty" validate:"omitempty,min=0" example:"15"` // minutes
	Tags      []string `json:"tags,omitempty" example:"planets"`
}

type CreateSessionResponse struct {
	Status    string `json:"status" example:"success"`
	SessionID string `json:"session_id" example:"V1StGXR8_Z5jdHi6B-myT"`
}

type SessionProgressResponse struct {
	Active           bool `json:"active" example:"true"`
	FactsStudied     int  `json:"facts_studied" example:"7"`
	CorrectAnswers   int  `json:"correct_answers" example:"5"`
	Answered         int  `json:"answered" example:"6"`
	Accuracy         int  `json:"accuracy" example:"83"`
	RemainingSeconds *int `json:"remaining_seconds,omitempty" example:"540"`
}

type SessionSummaryResponse struct {
	ID             string   `json:"id" example:"V1StGXR8_Z5jdHi6B-myT"`
	DeckName       string   `json:"deck_name" example:"Sample_Facts"`
	Mode           string   `json:"mode" example:"spaced"`
	Tags           []string `json:"tags,omitempty"`
	StartedAt      string   `json:"started_at" example:"2026-05-01T18:00:00Z"`
	EndedAt        *string  `json:"ended_at,omitempty" example:"2026-05-01T18:12:00Z"`
	DurationSecs   int      `json:"duration_seconds" example:"720"`
	FactsStudied   int      `json:"facts_studied" example:"7"`
	CorrectAnswers int      `json:"correct_answers" example:"5"`
	Answered       int      `json:"answered" example:"6"`
	Accuracy       int      `json:"accuracy" example:"83"`
}

type EndSessionResponse struct {
	Status          string                 `json:"status" example:"success"`
	Session         SessionSummaryResponse `json:"session"`
	NewAchievements []AchievementResponse  `json:"new_achievements,omitempty"`
}

func toSessionSummary(s *studysession.Session) SessionSummaryResponse {
	resp := SessionSummaryResponse{
		ID:             s.ID,
		DeckName:       s.DeckName,
		Mode:           string(s.Config.Mode),
		Tags:           s.Config.Tags,
		StartedAt:      s.StartedAt.UTC().Format(time.RFC3339),
		FactsStudied:   s.FactsStudied,
		CorrectAnswers: s.CorrectAnswers,
		Answered:       s.Answered,
		Accuracy:       s.Accuracy(),
	}
	if s.EndedAt != nil {
		resp.EndedAt = formatTime(*s.EndedAt)
		resp.DurationSecs = int(s.EndedAt.Sub(s.StartedAt).Seconds())
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a custom study session on the current deck.
// @Summary      Create a custom session
// @Description  Optional fact cap, time limit in minutes and tag filter. Any running session is ended first.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session config"
// @Success      200   {object}  CreateSessionResponse
// @Failure      400   {object}  StatusResponse
// @Failure      409   {object}  StatusResponse
// @Router       /create_custom_session [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	mode, err := studysession.ParseMode(req.Mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := studysession.Config{
		Mode:      mode,
		FactLimit: req.FactLimit,
		Tags:      req.Tags,
	}
	if req.TimeLimit != nil {
		limit := time.Duration(*req.TimeLimit) * time.Minute
		config.TimeLimit = &limit
	}

	session, err := h.svc.CreateSession(r.Context(), config)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, CreateSessionResponse{Status: "success", SessionID: session.ID})
}

// getSessionProgress reports the running session.
// @Summary      Session progress
// @Description  Returns {"active":false} when no session has been started.
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  SessionProgressResponse
// @Router       /get_session_progress [get]
func (h *Handler) getSessionProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.SessionProgress()
	if errors.Is(err, service.ErrNoSession) {
		respondJSON(w, http.StatusOK, SessionProgressResponse{Active: false})
		return
	}
	if h.handleServiceError(w, err) {
		return
	}

	s := progress.Session
	resp := SessionProgressResponse{
		Active:         s.Active(),
		FactsStudied:   s.FactsStudied,
		CorrectAnswers: s.CorrectAnswers,
		Answered:       s.Answered,
		Accuracy:       s.Accuracy(),
	}
	if progress.Remaining != nil {
		secs := int(progress.Remaining.Seconds())
		resp.RemainingSeconds = &secs
	}
	respondJSON(w, http.StatusOK, resp)
}

// endSession closes the running session.
// @Summary      End session
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  EndSessionResponse
// @Failure      404  {object}  StatusResponse
// @Router       /end_session [get]
func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	session, earned, err := h.svc.EndSession(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	resp := EndSessionResponse{Status: "success", Session: toSessionSummary(session)}
	if len(earned) > 0 {
		resp.NewAchievements = toAchievementResponses(earned)
	}
	respondJSON(w, http.StatusOK, resp)
}
