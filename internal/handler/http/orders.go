package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/service"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

const orderIDParam = "order_id"

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("user", callerFromRequest(r)).Logger()

	rawOrderID := chi.URLParam(r, orderIDParam)
	orderID, err := strconv.ParseInt(rawOrderID, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// a well-formed integer outside int64 cannot name any stored order
		log.Debug().Str(orderIDParam, rawOrderID).Msg("order id out of range")
		writeError(w, service.ErrOrderNotFound)
		return
	}
	if err != nil {
		log.Err(err).Str(orderIDParam, rawOrderID).Msg("order id is not an integer")
		writeError(w, fmt.Errorf("%w: %s must be an integer", service.ErrInvalidDataProvided, orderIDParam))
		return
	}

	order, err := h.services.OrderService.GetOrder(r.Context(), orderID)
	if err != nil {
		log.Err(err).Int64(orderIDParam, orderID).Msg("error getting order")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}
