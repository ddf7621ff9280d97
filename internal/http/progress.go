package http

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleUserAttempts(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_attempts"

	attempts, err := h.Progress.Attempts(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, attemptsResponse{Attempts: attempts})
}

func (h *Handler) handleUserScores(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_scores"

	sum, err := h.Progress.Scores(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) handleUserAttemptsExport(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_attempts_export"

	var buf bytes.Buffer
	name, err := h.Progress.ExportAttempts(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"), &buf)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(name)))
	_, _ = w.Write(buf.Bytes())
}
