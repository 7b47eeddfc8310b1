package http

import (
	"net/http"

	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/MKhiriev/qa-demo-api/models"
)

const statusOK = "ok"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthStatus{Status: statusOK}, http.StatusOK)
}
