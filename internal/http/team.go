package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"csa-console/internal/roster"
	"csa-console/internal/service"
)

func (h *Handler) handleTeamView(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_view"

	q := r.URL.Query()
	view, err := h.Roster.View(r.Context(), sessionFrom(r.Context()), q.Get("scheme"), q.Get("search"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleTeamEdit(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_edit"

	if err := h.Roster.BeginEdit(r.Context(), sessionFrom(r.Context())); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: string(roster.Editing)})
}

func (h *Handler) handleTeamCancel(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_cancel"

	if err := h.Roster.Cancel(r.Context(), sessionFrom(r.Context())); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: string(roster.Viewing)})
}

func (h *Handler) handleTeamSave(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_save"

	rep, err := h.Roster.Save(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// частичный успех не ошибка запроса, исход каждой операции в отчёте
	status := http.StatusOK
	if rep.Failed > 0 || rep.Skipped > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, rep)
}

func (h *Handler) handleMemberUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_member_update"

	var patch service.MemberPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}
	if err := ValidateMemberPatch(patch); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Roster.UpdateMember(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"), patch); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMemberResetPassword(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_member_password"

	id := chi.URLParam(r, "id")
	pw, err := h.Roster.ResetPassword(r.Context(), sessionFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, passwordResponse{MemberID: id, Password: pw})
}

func (h *Handler) handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_member_delete"

	pin := r.Header.Get(pinHeader)
	if err := ValidatePIN(pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Roster.QueueDelete(r.Context(), sessionFrom(r.Context()), id, pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusAccepted, queuedResponse{MemberID: id, Queued: true})
}

func (h *Handler) handleTeamExport(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_export"

	q := r.URL.Query()
	var buf bytes.Buffer
	if err := h.Roster.Export(r.Context(), sessionFrom(r.Context()), q.Get("scheme"), q.Get("search"), &buf); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="team.csv"`)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleTeamSaves(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_saves"

	limit, err := ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	reps, err := h.Roster.Reports(r.Context(), sessionFrom(r.Context()), limit)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, reportsResponse{Reports: reps})
}
