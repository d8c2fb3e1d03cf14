package http

import (
	"net/http"

	"github.com/mvallejo3/do-genai-api/internal/utils"
)

// health serves GET /. Its body shape predates the response envelope, so it
// is registered through RegisterRaw and writes the fixed payload itself.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"message": "DO GenAI API is running",
	}, http.StatusOK)
}
