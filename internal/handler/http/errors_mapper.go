package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/qa-demo-api/internal/app"
	"github.com/MKhiriev/qa-demo-api/internal/service"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,
	service.ErrBadCredentials:      http.StatusUnauthorized,
	service.ErrMissingToken:        http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrOrderNotFound:       http.StatusNotFound,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

var errorDetailMap = map[error]string{
	service.ErrBadCredentials: app.MsgBadCredentials,
	service.ErrMissingToken:   app.MsgMissingOrInvalidToken,
	service.ErrInvalidToken:   app.MsgInvalidToken,
	service.ErrOrderNotFound:  app.MsgOrderNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError picks the client-facing message for err. Validation
// failures expose their reason, everything else unknown gets the status text.
func detailFromError(err error, status int) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error()
	}
	return http.StatusText(status)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteDetail(w, detailFromError(err, status), status)
}

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
