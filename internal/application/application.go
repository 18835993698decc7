package application

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/runtime-env/internal/api"
	"github.com/eugenenazirov/runtime-env/internal/config"
	"github.com/eugenenazirov/runtime-env/internal/metrics"
	"github.com/eugenenazirov/runtime-env/internal/namespace"
	"github.com/eugenenazirov/runtime-env/internal/render"
	"github.com/eugenenazirov/runtime-env/internal/storage"
	"github.com/eugenenazirov/runtime-env/internal/substitution"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage storage.Storage
	metrics *metrics.Metrics
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// Sources maps the service configuration onto override sources.
func Sources(cfg config.Config) substitution.Sources {
	return substitution.Sources{
		File:      cfg.OverridesFile,
		Dotenv:    cfg.DotenvFile,
		EnvPrefix: cfg.EnvPrefix,
	}
}

// ScriptOptions maps the service configuration onto env.js rendering options.
func ScriptOptions(cfg config.Config, mergeOnly bool) render.Options {
	return render.Options{
		Global:    cfg.Global,
		MergeOnly: mergeOnly,
		Header:    "Runtime environment configuration. Generated at deploy time; do not edit.",
	}
}

// New initializes the application from the provided configuration and the
// namespace resolved at startup.
func New(cfg config.Config, ns namespace.Namespace, logger *zap.Logger) (*App, error) {
	store, err := storage.NewMemoryStorageFrom(ns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize namespace: %w", err)
	}

	settings, err := store.Settings()
	if err != nil {
		return nil, fmt.Errorf("failed to decode namespace: %w", err)
	}

	m := metrics.New()
	m.SetInfo(settings)

	handler := api.NewHandler(store, api.WithScriptOptions(ScriptOptions(cfg, false)))
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithMetrics(m),
	)

	rootHandler, err := BuildRootHandler(apiRouter, cfg.WebRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP handler: %w", err)
	}

	logger.Info("namespace resolved",
		zap.String("environment", settings.Environment),
		zap.String("app_version", settings.AppVersion),
		zap.Bool("analytics", settings.EnableAnalytics),
		zap.Bool("debug", settings.Debug),
	)

	return &App{
		storage: store,
		metrics: m,
		handler: handler,
		router:  apiRouter,
		logger:  logger,
		server:  NewServer(cfg, rootHandler),
	}, nil
}

// BuildRootHandler constructs the root HTTP handler that routes env and API
// requests and, when webRoot is set, serves the front-end bundle from it.
// Unknown paths without a file extension fall back to index.html so client
// side routes resolve.
func BuildRootHandler(apiHandler http.Handler, webRoot string) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.Handle("/env.js", apiHandler)
	mux.Handle("/api/", apiHandler)
	mux.Handle("/metrics", apiHandler)

	if webRoot == "" {
		return mux, nil
	}

	root, err := resolveProjectPath(webRoot)
	if err != nil {
		return nil, err
	}
	indexPath := filepath.Join(root, "index.html")
	files := http.FileServer(http.Dir(root))

	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" {
			if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(clean))); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
			if path.Ext(clean) != "" {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, indexPath)
	}))

	return mux, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// resolveProjectPath returns absolute paths unchanged and locates relative
// ones by walking up from the working directory.
func resolveProjectPath(relative string) (string, error) {
	if filepath.IsAbs(relative) {
		if _, err := os.Stat(relative); err != nil {
			return "", fmt.Errorf("unable to locate %s: %w", relative, err)
		}
		return relative, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
