package http

import (
	"errors"
	"net/http"

	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/service"
	"github.com/amitvgi12/jarvis-configuration-service/internal/store"
	"github.com/amitvgi12/jarvis-configuration-service/internal/templating"
	"github.com/amitvgi12/jarvis-configuration-service/internal/utils"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidName: http.StatusBadRequest,

	store.ErrApplicationNotFound: http.StatusNotFound,
	store.ErrModuleNotFound:      http.StatusNotFound,
	store.ErrResourceNotFound:    http.StatusNotFound,

	store.ErrMalformedRedirect: http.StatusInternalServerError,
	store.ErrRedirectChain:     http.StatusInternalServerError,
	store.ErrReadingFile:       http.StatusInternalServerError,
	store.ErrInvalidLayer:      http.StatusInternalServerError,
	document.ErrParsing:        http.StatusInternalServerError,
	document.ErrEncoding:       http.StatusInternalServerError,

	templating.ErrMissingParameters: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends err as an [models.ErrorResponse]. Missing parameters are
// listed so an operator can complete the parameter document; other server
// side failures are reported without their details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	response := models.ErrorResponse{Error: err.Error()}

	var missing *templating.MissingParametersError
	switch {
	case errors.As(err, &missing):
		response.MissingParameters = missing.Parameters
	case status >= http.StatusInternalServerError:
		response.Error = http.StatusText(status)
	}

	if _, writeErr := utils.WriteJSON(w, r, response, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "writeError").Msg("error writing error response")
	}
}
