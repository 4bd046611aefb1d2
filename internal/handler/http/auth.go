package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	sess := h.sessionFrom(r)
	result, err := h.services.AuthService.Register(r.Context(), sess, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, sess, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	sess := h.sessionFrom(r)
	result, err := h.services.AuthService.Login(r.Context(), sess, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, sess, result)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	ok := h.services.AuthService.Logout(r.Context(), sess)

	h.respond(w, r, sess, models.StatusResponse{OK: ok})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	user, err := h.services.AuthService.Me(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, sess, models.MeResponse{User: user})
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	ok := h.services.AuthService.ForgotPassword(r.Context(), req)

	h.respond(w, r, h.sessionFrom(r), models.StatusResponse{OK: ok})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	sess := h.sessionFrom(r)
	result, err := h.services.AuthService.ResetPassword(r.Context(), sess, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, sess, result)
}

// decode reads the JSON body into dst. On failure it writes 400 and
// returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// sessionFrom returns the session context attached by withSession.
func (h *Handler) sessionFrom(r *http.Request) *models.SessionContext {
	if sess, ok := utils.GetSessionContext(r.Context()); ok {
		return sess
	}
	return models.NewSessionContext("")
}

// respond applies the cookie directive left in sess and writes body.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, sess *models.SessionContext, body any) {
	if sess.Cookie != nil {
		utils.WriteCookie(w, *sess.Cookie)
	}
	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	http.Error(w, http.StatusText(status), status)
}
