package api

import (
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type TagsResponse struct {
	Tags []string `json:"tags" example:"planets,stars"`
}

type UpdateTagsRequest struct {
	Tags []string `json:"tags" validate:"required,dive,max=64" example:"planets"`
}

type UpdateTagsResponse struct {
	Status string   `json:"status" example:"success"`
	Tags   []string `json:"tags" example:"planets"`
}

type FactDetailsResponse struct {
	FactID      string   `json:"factId" example:"3f2a9c1d7e4b6a08"`
	DeckName    string   `json:"deckName" example:"Sample_Facts"`
	Content     string   `json:"content" example:"The **Sun** is a star."`
	ContentHTML string   `json:"content_html" example:"<p>The <strong>Sun</strong> is a star.</p>"`
	Back        string   `json:"back,omitempty"`
	BackHTML    string   `json:"back_html,omitempty"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags"`
	EaseFactor  float64  `json:"easeFactor" example:"2.5"`
	Repetitions int      `json:"repetitions" example:"0"`
	Interval    int      `json:"interval" example:"0"`
	LastReview  *string  `json:"lastReview,omitempty"`
	NextReview  *string  `json:"nextReview,omitempty"`
}

type SessionStatsResponse struct {
	ID           string  `json:"id"`
	DeckName     string  `json:"deck_name"`
	StartedAt    string  `json:"started_at"`
	EndedAt      *string `json:"ended_at,omitempty"`
	FactsStudied int     `json:"facts_studied"`
	Accuracy     int     `json:"accuracy"`
}

type StudyStatsResponse struct {
	TotalFacts    int                    `json:"total_facts" example:"42"`
	ReviewedFacts int                    `json:"reviewed_facts" example:"30"`
	DueFacts      int                    `json:"due_facts" example:"5"`
	NewFacts      int                    `json:"new_facts" example:"12"`
	AvgEaseFactor float64                `json:"avg_ease_factor" example:"2.45"`
	StudySessions []SessionStatsResponse `json:"study_sessions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getTags lists the tags in use.
// @Summary      List tags
// @Description  Tags of the current deck, or of every deck when none is loaded.
// @Tags         Tags
// @Produce      json
// @Success      200  {object}  TagsResponse
// @Router       /get_tags [get]
func (h *Handler) getTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	if tags == nil {
		tags = []string{}
	}
	respondJSON(w, http.StatusOK, TagsResponse{Tags: tags})
}

// updateFactTags replaces the tags of a fact.
// @Summary      Update fact tags
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Fact ID"
// @Param        body  body      UpdateTagsRequest  true  "New tags"
// @Success      200   {object}  UpdateTagsResponse
// @Failure      400   {object}  StatusResponse
// @Failure      404   {object}  StatusResponse
// @Router       /update_fact_tags/{id} [post]
func (h *Handler) updateFactTags(w http.ResponseWriter, r *http.Request) {
	var req UpdateTagsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tags, err := h.svc.UpdateFactTags(r.Context(), r.PathValue("id"), req.Tags)
	if h.handleServiceError(w, err) {
		return
	}
	if tags == nil {
		tags = []string{}
	}
	respondJSON(w, http.StatusOK, UpdateTagsResponse{Status: "success", Tags: tags})
}

// getFactDetails returns a fact with rendered HTML and its schedule.
// @Summary      Fact details
// @Tags         Tags
// @Produce      json
// @Param        id   path      string  true  "Fact ID"
// @Success      200  {object}  FactDetailsResponse
// @Failure      404  {object}  StatusResponse
// @Router       /get_fact_details/{id} [get]
func (h *Handler) getFactDetails(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.FactDetails(r.Context(), r.PathValue("id"))
	if h.handleServiceError(w, err) {
		return
	}

	tags := d.Fact.Tags
	if tags == nil {
		tags = []string{}
	}
	respondJSON(w, http.StatusOK, FactDetailsResponse{
		FactID:      d.Fact.ID,
		DeckName:    d.Fact.DeckName,
		Content:     d.Fact.Content,
		ContentHTML: d.ContentHTML,
		Back:        d.Fact.Back,
		BackHTML:    d.BackHTML,
		Image:       d.Fact.Image,
		Tags:        tags,
		EaseFactor:  d.State.EaseFactor,
		Repetitions: d.State.Repetitions,
		Interval:    d.State.Interval,
		LastReview:  formatTime(d.State.LastReview),
		NextReview:  formatTime(d.State.NextReview),
	})
}

// getStudyStats summarizes the current deck and recent sessions.
// @Summary      Study statistics
// @Tags         Tags
// @Produce      json
// @Success      200  {object}  StudyStatsResponse
// @Failure      500  {object}  StatusResponse
// @Router       /get_study_stats [get]
func (h *Handler) getStudyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.StudyStats(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	sessions := make([]SessionStatsResponse, len(stats.Sessions))
	for i, s := range stats.Sessions {
		sessions[i] = SessionStatsResponse{
			ID:           s.ID,
			DeckName:     s.DeckName,
			StartedAt:    s.StartedAt.UTC().Format(time.RFC3339),
			FactsStudied: s.FactsStudied,
			Accuracy:     s.Accuracy(),
		}
		if s.EndedAt != nil {
			sessions[i].EndedAt = formatTime(*s.EndedAt)
		}
	}

	respondJSON(w, http.StatusOK, StudyStatsResponse{
		TotalFacts:    stats.TotalFacts,
		ReviewedFacts: stats.ReviewedFacts,
		DueFacts:      stats.DueFacts,
		NewFacts:      stats.NewFacts,
		AvgEaseFactor: stats.AvgEaseFactor,
		StudySessions: sessions,
	})
}
