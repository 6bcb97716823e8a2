package rest

import (
	"net/http"
	"time"

	"wordpace/internal/dataset"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	words   *dataset.Dataset
	version string
}

func NewHealthHandler(words *dataset.Dataset, version string) *HealthHandler {
	return &HealthHandler{words: words, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Words     *int      `json:"words,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready returns 200 once there is at least one word to serve, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, body := h.status()
	body.Version = ""
	body.Words = nil
	writeJSON(w, status, body)
}

// Health reports readiness together with the word count and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, body := h.status()
	writeJSON(w, status, body)
}

func (h *HealthHandler) status() (int, HealthResponse) {
	n := h.words.Len()
	resp := HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Words:     &n,
		Timestamp: time.Now(),
	}
	if n == 0 {
		resp.Status = "down"
		return http.StatusServiceUnavailable, resp
	}
	return http.StatusOK, resp
}
