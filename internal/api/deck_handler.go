package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/factflip/backend/internal/domain/deck"
	"github.com/factflip/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type DeckLoadedResponse struct {
	Status   string `json:"status" example:"success"`
	DeckName string `json:"deckName" example:"Sample_Facts"`
	Count    int    `json:"count" example:"42"`
}

type DeckStatusResponse struct {
	Loaded   bool   `json:"loaded" example:"true"`
	DeckName string `json:"deckName,omitempty" example:"Sample_Facts"`
	Count    int    `json:"count,omitempty" example:"42"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// upload stores a deck file and makes it current.
// @Summary      Upload a deck
// @Description  Accepts a JSON deck {"deckName", "facts"} or a Q:/A:/C: markdown deck as multipart field "file".
// @Tags         Decks
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Deck file (.json, .md)"
// @Success      200   {object}  DeckLoadedResponse
// @Failure      400   {object}  StatusResponse
// @Failure      413   {object}  StatusResponse
// @Failure      429   {object}  StatusResponse
// @Router       /upload [post]
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Deck file is too large")
			return
		}
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	filename := header.Filename
	if !deck.SupportedFile(filename) && filepath.Ext(filename) == "" {
		filename += ".json"
	}

	d, err := h.svc.UploadDeck(r.Context(), filename, file)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, DeckLoadedResponse{Status: "success", DeckName: d.Name, Count: d.Count()})
}

// getDeck returns a stored deck with its facts.
// @Summary      Get a deck
// @Tags         Decks
// @Produce      json
// @Param        name  path      string  true  "Deck name"
// @Success      200   {object}  deck.Deck
// @Failure      404   {object}  ErrorResponse
// @Router       /get_deck/{name} [get]
func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDeck(r.Context(), r.PathValue("name"))
	if errors.Is(err, service.ErrDeckNotFound) {
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: "Deck not found"})
		return
	}
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// loadDeck makes a stored deck current.
// @Summary      Load a deck
// @Tags         Decks
// @Produce      json
// @Param        name  path      string  true  "Deck name"
// @Success      200   {object}  DeckLoadedResponse
// @Failure      404   {object}  StatusResponse
// @Router       /load_deck/{name} [post]
func (h *Handler) loadDeck(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.LoadDeck(r.Context(), r.PathValue("name"))
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, DeckLoadedResponse{Status: "success", DeckName: d.Name, Count: d.Count()})
}

// loadSample makes the sample deck current.
// @Summary      Load the sample deck
// @Tags         Decks
// @Produce      json
// @Success      200  {object}  DeckLoadedResponse
// @Failure      404  {object}  StatusResponse
// @Router       /load_sample [get]
func (h *Handler) loadSample(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.LoadSample(r.Context())
	if errors.Is(err, service.ErrDeckNotFound) {
		respondError(w, http.StatusNotFound, "Sample deck not found")
		return
	}
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, DeckLoadedResponse{Status: "success", DeckName: d.Name, Count: d.Count()})
}

// listDecks lists stored deck names.
// @Summary      List decks
// @Tags         Decks
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  StatusResponse
// @Router       /list_decks [get]
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListDecks(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, names)
}

// deleteDeck removes a deck with its facts and schedule.
// @Summary      Delete a deck
// @Tags         Decks
// @Produce      json
// @Param        name  path      string  true  "Deck name"
// @Success      200   {object}  StatusResponse
// @Failure      404   {object}  StatusResponse
// @Router       /delete_deck/{name} [delete]
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if h.handleServiceError(w, h.svc.DeleteDeck(r.Context(), name)) {
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{Status: "success", Message: fmt.Sprintf("Deck '%s' deleted", name)})
}

// getStatus reports whether a deck is loaded.
// @Summary      Current deck status
// @Tags         Decks
// @Produce      json
// @Success      200  {object}  DeckStatusResponse
// @Router       /get_status [get]
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, DeckStatusResponse{
		Loaded:   status.Loaded,
		DeckName: status.DeckName,
		Count:    status.Count,
	})
}
