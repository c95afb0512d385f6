package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/amitvgi12/jarvis-configuration-service/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		respErr.Message = body.Error
		respErr.MissingParameters = body.MissingParameters
	} else {
		respErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if respErr.Message == "" {
		respErr.Message = http.StatusText(resp.StatusCode())
	}

	return respErr
}
