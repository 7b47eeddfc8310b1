package http

import (
	"net/http"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/MKhiriev/qa-demo-api/models"
)

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).With().Str("user", callerFromRequest(r)).Logger()

	var req models.AddRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid add request")
		writeError(w, invalidData(err))
		return
	}

	a, b := req.Operands()
	utils.WriteJSON(w, h.services.MathService.Add(ctx, a, b), http.StatusOK)
}
