// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Lines() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			out = append(out, entry)
		}
	}
	return out
}

func newBufferedHandler() (*Handler, *syncBuffer) {
	buf := &syncBuffer{}
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf).Level(zerolog.DebugLevel)}}, buf
}

func decodeError(t *testing.T, body io.Reader) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{"trace id from request is reused", "my-custom-trace-id"},
		{"trace id is generated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newBufferedHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			lines := buf.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, got, lines[0]["trace_id"])
		})
	}
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name: "explicit status and body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   7,
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name:       "nothing written",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newBufferedHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/users?x=1", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))
			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			lines := buf.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, "/api/users?x=1", lines[0]["uri"])
			assert.Equal(t, http.MethodPost, lines[0]["method"])
			assert.Equal(t, tt.wantStatus, lines[0]["status"])
			assert.Equal(t, tt.wantSize, lines[0]["size"])
			assert.Contains(t, lines[0], "duration")
		})
	}
}

// ── responseWriter ───────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot)
	n, err := rw.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, rw.Status())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 3, rw.size)
	assert.Same(t, http.ResponseWriter(rec), rw.Unwrap())
}

// ── withRecoverer ────────────────────────────────────────────────────────────

func TestWithRecoverer_RendersInternalEnvelope(t *testing.T) {
	h, buf := newBufferedHandler()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom: secret detail")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	h.withRecoverer(panicking).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")

	resp := decodeError(t, rec.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, msgInternal, resp.Message)

	var logged bool
	for _, line := range buf.Lines() {
		if line["panic"] == "boom: secret detail" {
			logged = true
		}
	}
	assert.True(t, logged)
}

func TestWithRecoverer_RepanicsAbortHandler(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	aborting := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecoverer(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

// ── withGZip ─────────────────────────────────────────────────────────────────

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append([]byte("echo: "), body...))
}

func TestWithGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		gzipRequest    bool
		wantGzipped    bool
	}{
		{"plain in, plain out", "", false, false},
		{"plain in, gzip out", "gzip", false, true},
		{"gzip in, plain out", "", true, false},
		{"gzip in, gzip out", "deflate, gzip;q=1.0", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(`{"account":"alice"}`)
			if tt.gzipRequest {
				body = gzipBytes(t, body)
			}

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rec := httptest.NewRecorder()
			withGZip(http.HandlerFunc(echoHandler)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var out []byte
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(rec.Body)
				require.NoError(t, err)
				out, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				out = rec.Body.Bytes()
			}
			assert.Equal(t, `echo: {"account":"alice"}`, string(out))
		})
	}
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgMalformedBody, decodeError(t, rec.Body).Message)
}

func TestWithGZip_EmptyResponseHasNoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Zero(t, rec.Body.Len())
}

func TestWithGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(http.HandlerFunc(echoHandler))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte(payload))))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, _ := io.ReadAll(zr)
			assert.Equal(t, "echo: "+payload, string(out))
		}()
	}
	wg.Wait()
}

func TestHasEncoding(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"gzip", true},
		{"GZIP", true},
		{"deflate, gzip;q=0.8", true},
		{"br, gzip ; q=1", true},
		{"gzip;q=0", false},
		{"deflate, br", false},
		{"x-gzip-ish", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, hasEncoding(tt.header, "gzip"))
		})
	}
}

// ── withTimeout ──────────────────────────────────────────────────────────────

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantStatus  int
		wantMessage string
	}{
		{
			name: "deadline passes before anything is written",
			handler: func(_ http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgTimeout,
		},
		{
			name: "handler reports the deadline itself",
			handler: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				writeError(w, r, r.Context().Err())
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgInternal,
		},
		{
			name: "fast handler is untouched",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeSuccess(w, r, "ok", http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			withTimeout(20*time.Millisecond)(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage == "" {
				return
			}
			resp := decodeError(t, rec.Body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestWithTimeout_DisabledForNonPositive(t *testing.T) {
	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	withTimeout(0)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, hasDeadline)
}
