// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/utils"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

// hostQueryParam selects the host whose override-only modules are listed.
const hostQueryParam = "host"

// getStatus handles GET /.
//
// Responses:
//   - 200 OK with [models.ServerStatus]
//   - 500 Internal Server Error when the base directory cannot be read
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.services.ConfigService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading server status")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, r, status, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error writing response")
	}
}

// listModules handles GET /{appName}[?host=name] and returns the module names
// of the application as a JSON array.
func (h *Handler) listModules(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	appName := chi.URLParam(r, "appName")

	modules, err := h.services.ConfigService.ListModules(r.Context(), appName, r.URL.Query().Get(hostQueryParam))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listModules").Str("app", appName).Msg("error listing modules")
		writeError(w, r, err)
		return
	}
	if modules == nil {
		modules = []string{}
	}

	if _, err = utils.WriteJSON(w, r, modules, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listModules").Msg("error writing response")
	}
}

// getModuleConfig handles every module route and returns the templated
// document in the notation it is stored in.
//
// Responses:
//   - 200 OK with the document, or 304 Not Modified when If-None-Match matches
//   - 400 Bad Request for names that cannot address a file
//   - 404 Not Found for unknown applications or modules
//   - 500 Internal Server Error with the missing parameter list when the
//     parameter document is incomplete
func (h *Handler) getModuleConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req := models.ConfigRequest{
		AppName:    chi.URLParam(r, "appName"),
		ModuleName: h.moduleName(chi.URLParam(r, "moduleName")),
		HostName:   chi.URLParam(r, "hostName"),
	}

	doc, err := h.services.ConfigService.GetModuleConfig(r.Context(), req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getModuleConfig").
			Str("app", req.AppName).
			Str("module", req.ModuleName).
			Str("host", req.HostName).
			Msg("error getting module configuration")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteContent(w, r, doc.Content, doc.ContentType); err != nil {
		log.Err(err).Str("func", "*Handler.getModuleConfig").Msg("error writing response")
	}
}

// getResource handles GET /{appName}/resources/{fileName} and returns the
// file untouched.
func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	appName := chi.URLParam(r, "appName")
	fileName := chi.URLParam(r, "fileName")

	data, err := h.services.ConfigService.GetResource(r.Context(), appName, fileName)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getResource").
			Str("app", appName).
			Str("file", fileName).
			Msg("error reading resource")
		writeError(w, r, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if _, err = utils.WriteContent(w, r, data, contentType); err != nil {
		log.Err(err).Str("func", "*Handler.getResource").Msg("error writing response")
	}
}
