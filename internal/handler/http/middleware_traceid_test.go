package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/MyApp1", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	t.Run("reuses incoming trace id", func(t *testing.T) {
		rec, req := executeWithTraceID(h, "my-trace")
		require.NotNil(t, req)
		assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
	})

	t.Run("generates uuid when absent", func(t *testing.T) {
		rec, req := executeWithTraceID(h, "")
		require.NotNil(t, req)

		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("generated ids differ", func(t *testing.T) {
		rec1, _ := executeWithTraceID(h, "")
		rec2, _ := executeWithTraceID(h, "")
		assert.NotEqual(t, rec1.Header().Get(traceIDHeader), rec2.Header().Get(traceIDHeader))
	})
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, req := executeWithTraceID(h, "trace-42")
	require.NotNil(t, req)

	logger.FromRequest(req).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
}
