package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/service"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidPathID:              http.StatusBadRequest,
	ErrDecodingBody:               http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	ErrInvalidPathID:                   app.MsgValidIDNotInput,
	ErrDecodingBody:                    app.MsgInvalidJSON,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// toAppError returns the *app.Error in err's chain, or builds one for the
// transport sentinels. Messages of unknown errors never reach the client.
func toAppError(err error) *app.Error {
	var appErr *app.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return app.NewInternalServerError(err)
	}

	message := err.Error()
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			message = msg
			break
		}
	}

	rebuilt, convErr := app.FromStatusCode(status, message)
	if convErr != nil {
		return app.NewInternalServerError(err)
	}
	return rebuilt
}

// writeError writes err as an app.Error JSON body with its status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	appErr := toAppError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", appErr.StatusCode).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, appErr, appErr.StatusCode); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, app.NewResourceNotFoundError(""))
}
