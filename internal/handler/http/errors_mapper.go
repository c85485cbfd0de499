package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/legacy-vault/internal/app"
	"github.com/MKhiriev/legacy-vault/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInitDataMissing:     http.StatusBadRequest,
	service.ErrServerMisconfigured: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInitDataMissing:     app.MsgInitDataMissing,
	service.ErrServerMisconfigured: app.MsgServerMisconfigured,
}

var errorResultMap = map[error]string{
	service.ErrInitDataMissing:     resultBadRequest,
	service.ErrServerMisconfigured: resultMisconfigured,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response message for err. Unknown errors get
// a generic message so that internals never reach the client.
func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

func resultFromError(err error) string {
	for target, result := range errorResultMap {
		if errors.Is(err, target) {
			return result
		}
	}
	return resultError
}
