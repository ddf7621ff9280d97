package http

import (
	"encoding/json"
	"net/http"

	"csa-console/internal/service"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_login"

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateLoginRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	sess, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.setCookie(w, sess.ID)
	writeJSON(w, http.StatusOK, loginResponse{SessionID: sess.ID, User: sess.User})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_logout"

	if id := sessionID(r); id != "" {
		if err := h.Auth.Logout(r.Context(), id); err != nil {
			h.writeError(w, handlerName, err)
			return
		}
	}
	h.clearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userResponse{User: sessionFrom(r.Context()).User})
}
