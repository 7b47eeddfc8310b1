package http

import (
	"net/http"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/MKhiriev/qa-demo-api/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, invalidData(err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.Credentials())
	if err != nil {
		log.Err(err).Str("username", *req.Username).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Info().Str("username", *req.Username).Msg("user logged in")
	utils.WriteJSON(w, token, http.StatusOK)
}
