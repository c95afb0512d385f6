package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// serverURL may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(serverURL string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json, application/yaml")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.ServerStatus, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("%w: status request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerStatus{}, err
	}

	var status models.ServerStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.ServerStatus{}, fmt.Errorf("decode status response: %w", err)
	}
	return status, nil
}

func (h *httpServerAdapter) ListModules(ctx context.Context, appName, hostName string) ([]string, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("appName", appName)
	if hostName != "" {
		req.SetQueryParam("host", hostName)
	}

	resp, err := req.Get("/{appName}")
	if err != nil {
		return nil, fmt.Errorf("%w: list modules request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var modules []string
	if err = json.Unmarshal(resp.Body(), &modules); err != nil {
		return nil, fmt.Errorf("decode modules response: %w", err)
	}
	return modules, nil
}

func (h *httpServerAdapter) GetModuleConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigDocument, error) {
	path := "/{appName}/{moduleName}"
	params := map[string]string{
		"appName":    req.AppName,
		"moduleName": req.ModuleName,
	}
	if req.HostName != "" {
		path += "/{hostName}"
		params["hostName"] = req.HostName
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(params).
		Get(path)
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("%w: module request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigDocument{}, err
	}

	h.logger.Debug().
		Str("app", req.AppName).
		Str("module", req.ModuleName).
		Str("host", req.HostName).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("configuration fetched from server")

	return models.ConfigDocument{
		Content:     resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}

func (h *httpServerAdapter) GetResource(ctx context.Context, appName, fileName string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"appName": appName, "fileName": fileName}).
		Get("/{appName}/resources/{fileName}")
	if err != nil {
		return nil, fmt.Errorf("%w: resource request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
