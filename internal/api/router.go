package api

import "net/http"

// RegisterRoutes mounts every endpoint on mux. Uploads pass through limiter
// when it is non-nil.
func RegisterRoutes(mux *http.ServeMux, h *Handler, limiter *RateLimiter) {
	// Study
	mux.HandleFunc("GET /next_fact", h.nextFact)
	mux.HandleFunc("GET /submit_answer/{factId}/{quality}", h.submitAnswer)
	mux.HandleFunc("POST /submit_answer/{factId}/{quality}", h.submitAnswer)
	mux.HandleFunc("POST /set_study_mode", h.setStudyMode)
	mux.HandleFunc("GET /toggle_shuffle", h.toggleShuffle)

	// Decks
	var upload http.Handler = http.HandlerFunc(h.upload)
	if limiter != nil {
		upload = limiter.Middleware(upload)
	}
	mux.Handle("POST /upload", upload)
	mux.HandleFunc("GET /get_deck/{name}", h.getDeck)
	mux.HandleFunc("POST /load_deck/{name}", h.loadDeck)
	mux.HandleFunc("GET /load_sample", h.loadSample)
	mux.HandleFunc("GET /list_decks", h.listDecks)
	mux.HandleFunc("DELETE /delete_deck/{name}", h.deleteDeck)
	mux.HandleFunc("GET /get_status", h.getStatus)
	mux.HandleFunc("GET /export", h.export)

	// Sessions
	mux.HandleFunc("POST /create_custom_session", h.createSession)
	mux.HandleFunc("GET /get_session_progress", h.getSessionProgress)
	mux.HandleFunc("GET /end_session", h.endSession)

	// Achievements
	mux.HandleFunc("GET /get_achievements", h.getAchievements)
	mux.HandleFunc("GET /get_user_achievements", h.getUserAchievements)
	mux.HandleFunc("GET /get_progress", h.getProgress)

	// Tags
	mux.HandleFunc("GET /get_tags", h.getTags)
	mux.HandleFunc("POST /update_fact_tags/{id}", h.updateFactTags)
	mux.HandleFunc("GET /get_fact_details/{id}", h.getFactDetails)
	mux.HandleFunc("GET /get_study_stats", h.getStudyStats)

	mux.HandleFunc("GET /health", h.health)
}

// health reports liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
