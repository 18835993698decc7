package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
	"github.com/eugenenazirov/runtime-env/internal/render"
	"github.com/eugenenazirov/runtime-env/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler exposes the configuration namespace over HTTP.
type Handler struct {
	storage storage.Storage
	script  render.Options

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithScriptOptions controls how /env.js is rendered.
func WithScriptOptions(opts render.Options) HandlerOption {
	return func(h *Handler) {
		h.script = opts
	}
}

// NewHandler constructs a Handler reading from the provided store.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	settings, err := h.storage.Settings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := healthResponse{
		Status:      "ok",
		Environment: settings.Environment,
		AppVersion:  settings.AppVersion,
		Timestamp:   h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEnvScript(w http.ResponseWriter, r *http.Request) {
	_ = r
	var buf bytes.Buffer
	if err := render.JavaScript(&buf, h.storage.Snapshot(), h.script); err != nil {
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleGetEnv(w http.ResponseWriter, r *http.Request) {
	_ = r
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, h.storage.Snapshot())
}

func (h *Handler) handleGetEnvKey(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := h.storage.Get(key)
	if err != nil {
		if errors.Is(err, namespace.ErrUnknownKey) {
			writeError(w, http.StatusNotFound, "Unknown key", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, keyResponse{Key: key, Value: value})
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type keyResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type healthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	AppVersion  string    `json:"appVersion"`
	Timestamp   time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
