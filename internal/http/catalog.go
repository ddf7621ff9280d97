package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"csa-console/internal/model"
	"csa-console/internal/service"
)

func (h *Handler) handleSchemes(w http.ResponseWriter, r *http.Request) {
	const handlerName = "schemes_list"

	schemes, err := h.Catalog.Schemes(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, schemesResponse{Schemes: schemes})
}

func (h *Handler) handleDistinctSchemes(w http.ResponseWriter, r *http.Request) {
	const handlerName = "schemes_distinct"

	names, err := h.Catalog.DistinctSchemes(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, schemeNamesResponse{Schemes: names})
}

func (h *Handler) handleSchemeCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "scheme_create"

	var req createSchemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	msg, err := h.Catalog.CreateScheme(r.Context(), sessionFrom(r.Context()), req.SchemeName, req.FileURL)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleSchemeDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "scheme_delete"

	pin := r.Header.Get(pinHeader)
	if err := ValidatePIN(pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.Catalog.DeleteScheme(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "name"), pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSchemeQuestions(w http.ResponseWriter, r *http.Request) {
	const handlerName = "scheme_questions"

	qs, err := h.Catalog.Questions(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, questionsResponse{Questions: qs})
}

func (h *Handler) handleQuestionGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "question_get"

	q, err := h.Catalog.Question(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) handleQuestionCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "question_create"

	var q model.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	id, err := h.Catalog.CreateQuestion(r.Context(), sessionFrom(r.Context()), q)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusCreated, createQuestionResponse{QuestionID: id})
}

func (h *Handler) handleQuestionUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "question_update"

	var q model.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := h.Catalog.UpdateQuestion(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"), q); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleQuestionDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "question_delete"

	pin := r.Header.Get(pinHeader)
	if err := ValidatePIN(pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.Catalog.DeleteQuestion(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id"), pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePromptGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "prompt_get"

	p, err := h.Catalog.Prompt(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handlePromptUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "prompt_update"

	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	msg, err := h.Catalog.UpdatePrompt(r.Context(), sessionFrom(r.Context()), req.PromptText)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handler) handlePromptRevert(w http.ResponseWriter, r *http.Request) {
	const handlerName = "prompt_revert"

	pin := r.Header.Get(pinHeader)
	if err := ValidatePIN(pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.Catalog.RevertPrompt(r.Context(), sessionFrom(r.Context()), pin); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePromptRollback(w http.ResponseWriter, r *http.Request) {
	const handlerName = "prompt_rollback"

	msg, err := h.Catalog.RollbackPrompt(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}
