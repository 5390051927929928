package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/factflip/backend/internal/domain/deck"
	"github.com/factflip/backend/internal/service"
)

// export downloads the current deck in its upload format.
// @Summary      Export the current deck
// @Description  The file can be uploaded again as-is.
// @Tags         Decks
// @Produce      json
// @Success      200  {object}  deck.Deck
// @Failure      200  {object}  ErrorResponse  "no deck loaded"
// @Router       /export [get]
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.ExportCurrent(r.Context())
	if errors.Is(err, service.ErrNoDeck) {
		respondJSON(w, http.StatusOK, ErrorResponse{Error: "No deck loaded"})
		return
	}
	if h.handleServiceError(w, err) {
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deck.FileName(d.Name)+".json"))
	respondJSON(w, http.StatusOK, d)
}
