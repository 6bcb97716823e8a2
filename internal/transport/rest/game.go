package rest

import (
	"log/slog"
	"net/http"

	"wordpace/internal/dataset"
	"wordpace/internal/selector"
)

// GameHandler serves word selections from one immutable dataset.
type GameHandler struct {
	words *dataset.Dataset
	sel   *selector.Selector
	log   *slog.Logger
}

func NewGameHandler(words *dataset.Dataset, sel *selector.Selector, log *slog.Logger) *GameHandler {
	return &GameHandler{words: words, sel: sel, log: log}
}

// NextWord handles GET /game/next_word?mode=easy&seen_ids=cat,house.
func (h *GameHandler) NextWord(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := selector.SessionRequest{
		Mode:      q.Get("mode"),
		SeenWords: selector.ParseSeen(q.Get("seen_ids")),
	}

	sel, err := h.sel.Next(h.words, req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sel)
}
