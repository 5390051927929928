package api

import (
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type UserAchievementResponse struct {
	AchievementResponse
	UnlockedAt string `json:"unlocked_at" example:"2026-05-01T18:00:00Z"`
}

type ProgressResponse struct {
	CurrentStreak  int `json:"current_streak" example:"3"`
	LongestStreak  int `json:"longest_streak" example:"7"`
	TotalXP        int `json:"total_xp" example:"245"`
	Level          int `json:"level" example:"3"`
	FactsViewed    int `json:"facts_viewed" example:"120"`
	Reviews        int `json:"reviews" example:"80"`
	DecksCompleted int `json:"decks_completed" example:"2"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getAchievements lists every achievement that can be earned.
// @Summary      Achievement catalog
// @Tags         Achievements
// @Produce      json
// @Success      200  {array}  AchievementResponse
// @Router       /get_achievements [get]
func (h *Handler) getAchievements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toAchievementResponses(h.svc.Achievements()))
}

// getUserAchievements lists the achievements earned so far.
// @Summary      Unlocked achievements
// @Tags         Achievements
// @Produce      json
// @Success      200  {array}   UserAchievementResponse
// @Failure      500  {object}  StatusResponse
// @Router       /get_user_achievements [get]
func (h *Handler) getUserAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.svc.UserAchievements(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	resp := make([]UserAchievementResponse, len(unlocked))
	for i, u := range unlocked {
		resp[i] = UserAchievementResponse{
			AchievementResponse: AchievementResponse{
				ID:          u.ID,
				Name:        u.Name,
				Description: u.Description,
				Icon:        u.Icon,
				XP:          u.XP,
			},
			UnlockedAt: u.UnlockedAt.UTC().Format(time.RFC3339),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getProgress returns XP, level and the daily study streak.
// @Summary      User progress
// @Tags         Achievements
// @Produce      json
// @Success      200  {object}  ProgressResponse
// @Failure      500  {object}  StatusResponse
// @Router       /get_progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Progress(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ProgressResponse{
		CurrentStreak:  p.CurrentStreak,
		LongestStreak:  p.LongestStreak,
		TotalXP:        p.TotalXP,
		Level:          p.Level,
		FactsViewed:    p.FactsViewed,
		Reviews:        p.Reviews,
		DecksCompleted: p.DecksCompleted,
	})
}
