package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/runtime-env/internal/application"
	"github.com/eugenenazirov/runtime-env/internal/config"
	"github.com/eugenenazirov/runtime-env/internal/logging"
	"github.com/eugenenazirov/runtime-env/internal/namespace"
	"github.com/eugenenazirov/runtime-env/internal/render"
	"github.com/eugenenazirov/runtime-env/internal/substitution"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("runtime-env", "Runtime environment injector - resolves the front-end configuration namespace and serves or renders it")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	overridesFile := kingpinApp.Flag("overrides", "YAML, JSON or JSONC file with namespace overrides").String()
	dotenvFile := kingpinApp.Flag("dotenv", "Dotenv file with namespace overrides").String()
	envPrefix := kingpinApp.Flag("env-prefix", "Prefix for namespace environment variables").String()
	global := kingpinApp.Flag("global", "Name of the browser global holding the namespace").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	serveCmd := kingpinApp.Command("serve", "Serve env.js, the namespace API and the front-end bundle")
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	webRoot := serveCmd.Flag("web-root", "Directory holding the front-end bundle").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	renderCmd := kingpinApp.Command("render", "Write the resolved namespace to an env.js file")
	output := renderCmd.Flag("output", "Path of the rendered script").Short('o').String()
	mergeOnly := renderCmd.Flag("merge-only", "Only assign keys the page has not set already").Bool()

	printCmd := kingpinApp.Command("print", "Print the resolved namespace to stdout")
	format := printCmd.Flag("format", "Output format").Default("json").Enum("json", "js")

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile:    *configFile,
		Port:          port,
		WebRoot:       webRoot,
		OutputPath:    output,
		Global:        global,
		OverridesFile: overridesFile,
		DotenvFile:    dotenvFile,
		EnvPrefix:     envPrefix,
		LogLevel:      logLevel,
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	ns, err := resolveNamespace(cfg, logger)
	if err != nil {
		logger.Fatal("failed to resolve namespace", zap.Error(err))
	}

	nsLogger, err := loggerFor(cfg, ns, logger)
	if err != nil {
		logger.Fatal("failed to initialize debug logger", zap.Error(err))
	}
	logger = nsLogger

	switch command {
	case serveCmd.FullCommand():
		app, err := application.New(cfg, ns, logger)
		if err != nil {
			logger.Fatal("failed to initialize application", zap.Error(err))
		}

		if err := app.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}

		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)

	case renderCmd.FullCommand():
		if err := renderScript(cfg, ns, *mergeOnly, logger); err != nil {
			logger.Fatal("failed to render env script", zap.Error(err))
		}

	case printCmd.FullCommand():
		if err := printNamespace(os.Stdout, cfg, ns, *format); err != nil {
			logger.Fatal("failed to print namespace", zap.Error(err))
		}
	}
}

func resolveNamespace(cfg config.Config, logger *zap.Logger) (namespace.Namespace, error) {
	ns, err := substitution.Resolve(application.Sources(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("resolve overrides: %w", err)
	}
	return ns, nil
}

// loggerFor switches to a debug-level logger when the resolved namespace
// enables debug and the configured level is higher.
func loggerFor(cfg config.Config, ns namespace.Namespace, logger *zap.Logger) (*zap.Logger, error) {
	debug, _ := ns[namespace.KeyDebug].(bool)
	if !debug || cfg.LogLevel == "debug" {
		return logger, nil
	}

	debugLogger, err := logging.New("debug")
	if err != nil {
		return nil, err
	}
	_ = logger.Sync()
	debugLogger.Debug("debug logging enabled by namespace", zap.String("configured_level", cfg.LogLevel))
	return debugLogger, nil
}

func renderScript(cfg config.Config, ns namespace.Namespace, mergeOnly bool, logger *zap.Logger) error {
	if err := render.WriteFile(cfg.OutputPath, ns, application.ScriptOptions(cfg, mergeOnly)); err != nil {
		return err
	}
	logger.Info("env script rendered",
		zap.String("path", cfg.OutputPath),
		zap.Int("keys", len(ns)),
		zap.Bool("merge_only", mergeOnly),
	)
	return nil
}

func printNamespace(w io.Writer, cfg config.Config, ns namespace.Namespace, format string) error {
	switch format {
	case "js":
		return render.JavaScript(w, ns, application.ScriptOptions(cfg, false))
	default:
		return render.JSON(w, ns)
	}
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server", zap.Duration("grace_period", timeout), zap.String("addr", server.Addr))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
