package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.getStatus)
	router.Get("/{appName}", h.listModules)
	router.Get("/{appName}/resources/{fileName}", h.getResource)

	router.Get("/{appName}/{moduleName}", h.getModuleConfig)
	router.Get("/{appName}/{moduleName}/{hostName}", h.getModuleConfig)

	// legacy addressing kept for deployed clients
	router.Get("/{appName}/{moduleName}/config.json", h.getModuleConfig)
	router.Get("/{appName}/{moduleName}/config.json/{hostName}", h.getModuleConfig)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
