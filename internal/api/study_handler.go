package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/factflip/backend/internal/domain/achievement"
	studysession "github.com/factflip/backend/internal/domain/study_session"
	"github.com/factflip/backend/internal/service"
	"github.com/factflip/backend/internal/srs"
)

// ── Request / Response types ────────────────────────────────────────────────

type AchievementResponse struct {
	ID          string `json:"id" example:"first_fact"`
	Name        string `json:"name" example:"First Steps"`
	Description string `json:"description" example:"View your first fact"`
	Icon        string `json:"icon" example:"🌱"`
	XP          int    `json:"xp" example:"10"`
}

func toAchievementResponses(list []achievement.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, len(list))
	for i, a := range list {
		out[i] = AchievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			XP:          a.XP,
		}
	}
	return out
}

type NextFactResponse struct {
	Fact            string                `json:"fact" example:"The Sun is a star."`
	FactID          string                `json:"factId" example:"3f2a9c1d7e4b6a08"`
	Back            string                `json:"back,omitempty" example:"A G-type main-sequence star"`
	Image           string                `json:"image,omitempty"`
	Tags            []string              `json:"tags"`
	EaseFactor      float64               `json:"easeFactor" example:"2.5"`
	Repetitions     int                   `json:"repetitions" example:"0"`
	Interval        int                   `json:"interval" example:"0"`
	NextReview      *string               `json:"nextReview,omitempty" example:"2026-05-02T18:00:00Z"`
	NewAchievements []AchievementResponse `json:"new_achievements,omitempty"`
}

// NoFactResponse is returned when nothing is due or the session is over.
type NoFactResponse struct {
	SessionComplete bool                  `json:"session_complete,omitempty" example:"true"`
	NewAchievements []AchievementResponse `json:"new_achievements,omitempty"`
}

type SubmitAnswerResponse struct {
	Status          string                `json:"status" example:"success"`
	EaseFactor      float64               `json:"easeFactor" example:"2.6"`
	Repetitions     int                   `json:"repetitions" example:"1"`
	Interval        int                   `json:"interval" example:"1"`
	NextReview      string                `json:"nextReview" example:"2026-05-02T18:00:00Z"`
	NewAchievements []AchievementResponse `json:"new_achievements,omitempty"`
}

type SetStudyModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=spaced random sequential" example:"spaced"`
}

type StudyModeResponse struct {
	Status string `json:"status" example:"success"`
	Mode   string `json:"mode" example:"spaced"`
}

type ShuffleResponse struct {
	Status  string `json:"status" example:"success"`
	Shuffle bool   `json:"shuffle" example:"true"`
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// splitTags reads ?tag=a&tag=b as well as ?tag=a,b.
func splitTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// ── Handlers ────────────────────────────────────────────────────────────────

// nextFact returns the fact to study next.
// @Summary      Next fact
// @Description  Returns the next due fact of the current deck: overdue facts first, then new ones. Returns {} when nothing is due, {"session_complete":true} once the session cap is reached and {"error":"No deck loaded"} without a deck.
// @Tags         Study
// @Produce      json
// @Param        tag  query     []string  false  "Only facts with any of these tags"  collectionFormat(multi)
// @Success      200  {object}  NextFactResponse
// @Failure      500  {object}  StatusResponse
// @Router       /next_fact [get]
func (h *Handler) nextFact(w http.ResponseWriter, r *http.Request) {
	next, err := h.svc.NextFact(r.Context(), splitTags(r.URL.Query()["tag"]))
	if errors.Is(err, service.ErrNoDeck) {
		respondJSON(w, http.StatusOK, ErrorResponse{Error: "No deck loaded"})
		return
	}
	if h.handleServiceError(w, err) {
		return
	}

	var earned []AchievementResponse
	if len(next.NewAchievements) > 0 {
		earned = toAchievementResponses(next.NewAchievements)
	}

	if next.Fact == nil {
		respondJSON(w, http.StatusOK, NoFactResponse{
			SessionComplete: next.SessionComplete,
			NewAchievements: earned,
		})
		return
	}

	fs := next.Fact
	respondJSON(w, http.StatusOK, NextFactResponse{
		Fact:            fs.Fact.Content,
		FactID:          fs.Fact.ID,
		Back:            fs.Fact.Back,
		Image:           fs.Fact.Image,
		Tags:            fs.Fact.Tags,
		EaseFactor:      fs.State.EaseFactor,
		Repetitions:     fs.State.Repetitions,
		Interval:        fs.State.Interval,
		NextReview:      formatTime(fs.State.NextReview),
		NewAchievements: earned,
	})
}

// submitAnswer records a recall-quality score for a fact.
// @Summary      Submit answer
// @Description  Applies an SM-2 review with the given quality (0-5) and returns the fact's new schedule.
// @Tags         Study
// @Produce      json
// @Param        factId   path      string   true  "Fact ID"
// @Param        quality  path      integer  true  "Recall quality 0-5"
// @Success      200      {object}  SubmitAnswerResponse
// @Failure      400      {object}  StatusResponse
// @Failure      404      {object}  StatusResponse
// @Failure      500      {object}  StatusResponse
// @Router       /submit_answer/{factId}/{quality} [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	factID := r.PathValue("factId")
	quality, err := strconv.Atoi(r.PathValue("quality"))
	if err != nil {
		h.handleServiceError(w, srs.ErrInvalidQuality)
		return
	}

	state, earned, err := h.svc.SubmitAnswer(r.Context(), factID, quality)
	if h.handleServiceError(w, err) {
		return
	}

	resp := SubmitAnswerResponse{
		Status:      "success",
		EaseFactor:  state.EaseFactor,
		Repetitions: state.Repetitions,
		Interval:    state.Interval,
		NextReview:  state.NextReview.UTC().Format(time.RFC3339),
	}
	if len(earned) > 0 {
		resp.NewAchievements = toAchievementResponses(earned)
	}
	respondJSON(w, http.StatusOK, resp)
}

// setStudyMode changes how the next fact is picked.
// @Summary      Set study mode
// @Description  spaced (due first), random (cycle through the deck) or sequential (deck order).
// @Tags         Study
// @Accept       json
// @Produce      json
// @Param        body  body      SetStudyModeRequest  true  "Mode"
// @Success      200   {object}  StudyModeResponse
// @Failure      400   {object}  StatusResponse
// @Router       /set_study_mode [post]
func (h *Handler) setStudyMode(w http.ResponseWriter, r *http.Request) {
	var req SetStudyModeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	mode, err := studysession.ParseMode(req.Mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleServiceError(w, h.svc.SetMode(r.Context(), mode)) {
		return
	}

	respondJSON(w, http.StatusOK, StudyModeResponse{Status: "success", Mode: string(mode)})
}

// toggleShuffle flips random picking among due facts.
// @Summary      Toggle shuffle
// @Tags         Study
// @Produce      json
// @Success      200  {object}  ShuffleResponse
// @Router       /toggle_shuffle [get]
func (h *Handler) toggleShuffle(w http.ResponseWriter, r *http.Request) {
	shuffle, err := h.svc.ToggleShuffle(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ShuffleResponse{Status: "success", Shuffle: shuffle})
}
