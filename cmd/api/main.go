package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/YnHaddad/MSBA382Dash/internal/app"
	"github.com/YnHaddad/MSBA382Dash/internal/appconf"
	"github.com/YnHaddad/MSBA382Dash/internal/catalog"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
	"github.com/YnHaddad/MSBA382Dash/internal/restapi"
	"github.com/YnHaddad/MSBA382Dash/internal/webui"
	"github.com/YnHaddad/MSBA382Dash/internal/wuenic"
)

func main() {
	var (
		configPath string
		port       int
		env        string
		source     string
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.IntVar(&port, "port", 0, "API server port (overrides config)")
	flag.StringVar(&env, "env", "", "Environment (development|test|production)")
	flag.StringVar(&source, "source", "", "Path to the coverage workbook (overrides config)")
	flag.Parse()

	cfg, err := appconf.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if port != 0 {
		cfg.Port = port
	}
	if env != "" {
		cfg.Env = appconf.EnvFlagToEnvironment(env)
	}
	if source != "" {
		cfg.SourcePath = source
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel)).
		With(slog.String("env", cfg.Env.String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := buildApplication(ctx, *cfg, logger)
	if err != nil {
		// A missing or unreadable source stops startup here.
		logging.LogError(logger, "failed to load dataset", err, slog.String("source", cfg.SourcePath))
		os.Exit(1)
	}
	application.Manager.LogStatistics()

	api := restapi.NewRestAPI(application)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(application, api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "source", cfg.SourcePath)
		serveErr <- srv.ListenAndServe()
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logging.LogError(logger, "server stopped", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.LogError(logger, "graceful shutdown failed", err)
			exitCode = 1
		}
		cancel()
	}

	api.Shutdown()
	application.Manager.Shutdown()
	os.Exit(exitCode)
}

// buildApplication wires the dataset stack from cfg and performs the
// initial load.
func buildApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	regions := region.NewResolver(cfg.Regions)
	cache := dataset.NewCache(dataset.NewLoader(regions, logger))

	datasetConfig := wuenic.Config{
		SourcePath:   cfg.SourcePath,
		Watch:        cfg.Watch,
		PollInterval: cfg.PollInterval,
		Env:          cfg.Env,
		Verbose:      cfg.Env == appconf.Development,
	}
	manager, err := wuenic.InitManager(ctx, datasetConfig, cache, logger)
	if err != nil {
		return nil, err
	}

	return &app.Application{
		Config:        cfg,
		DatasetConfig: datasetConfig,
		Logger:        logger,
		Manager:       manager,
		Catalog: catalog.New(catalog.Overrides{
			Labels:  cfg.Labels,
			Aliases: cfg.Aliases,
			Presets: cfg.Presets,
		}),
		Regions: regions,
	}, nil
}

// routes mounts the API and, outside production, the debug pages.
func routes(application *app.Application, api *restapi.RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	if application.Config.Env != appconf.Production {
		webUI := &webui.WebUI{Application: application}
		webUI.SetWebUIRoutes(router)
	}
	return api.WithMiddleware(router)
}
