// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/vinterdal/bloggverk/internal/cache"
	"github.com/vinterdal/bloggverk/internal/config"
	"github.com/vinterdal/bloggverk/internal/handler"
	"github.com/vinterdal/bloggverk/internal/imaging"
	"github.com/vinterdal/bloggverk/internal/logging"
	"github.com/vinterdal/bloggverk/internal/middleware"
	"github.com/vinterdal/bloggverk/internal/pipeline"
	"github.com/vinterdal/bloggverk/internal/render"
	"github.com/vinterdal/bloggverk/internal/resolver"
	"github.com/vinterdal/bloggverk/internal/scheduler"
	"github.com/vinterdal/bloggverk/internal/store"
	"github.com/vinterdal/bloggverk/internal/textgen"
	"github.com/vinterdal/bloggverk/internal/version"
	"github.com/vinterdal/bloggverk/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	// Launch mode runs the generation pipeline once and exits.
	launch := flag.Bool("launch", false, "Generate a new website and exit")
	launchName := flag.String("name", "", "Website name (with -launch)")
	launchTopic := flag.String("topic", "", "Website topic (with -launch)")
	launchHostname := flag.String("hostname", "", "Website hostname (with -launch)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "bloggverk - multi-tenant AI-provisioned blog platform\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_ADMIN_TOKEN        Admin API bearer token (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_DB_PATH            SQLite database path (default: ./data/bloggverk.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_SERVER_PORT        Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_TEXT_PROVIDER      Text model provider: anthropic|openai (default: anthropic)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_ANTHROPIC_API_KEY  Anthropic API key\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_OPENAI_API_KEY     OpenAI API key (also enables portraits)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGGVERK_REDIS_URL          Redis URL for distributed caching (optional)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("bloggverk %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(*launch, *launchName, *launchTopic, *launchHostname); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(launch bool, launchName, launchTopic, launchHostname string) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	var baseHandler slog.Handler
	if cfg.IsDevelopment() {
		baseHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		baseHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}
	logger := slog.New(baseHandler)
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	st := store.New(db)
	slog.Info("database ready")

	// Upgrade logger to tee WARN and ERROR records into the events table
	eventLogHandler := logging.NewEventLogHandler(baseHandler, st)
	logger = slog.New(eventLogHandler)
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn", "version", versionInfo.Version)

	// Text + image collaborators and the generation pipeline
	provider, err := textgen.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing text provider: %w", err)
	}
	launcher := pipeline.New(pipeline.Config{
		Store:          st,
		Provider:       provider,
		Images:         textgen.NewImageProvider(cfg),
		Portraits:      imaging.NewProcessor(cfg.UploadsDir),
		Logger:         logger,
		GenerateAuthor: cfg.GenerateAuthor,
	})

	// One-shot launch mode
	if launch {
		if launchName == "" || launchTopic == "" || launchHostname == "" {
			return errors.New("-launch requires -name, -topic and -hostname")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		website, err := launcher.Launch(ctx, launchName, launchTopic, launchHostname)
		if err != nil {
			return fmt.Errorf("launching website: %w", err)
		}
		slog.Info("website generated",
			"id", website.ID, "hostname", website.HostName, "name", website.Name)
		return nil
	}

	// Cache backend and resolver
	cacher, err := cache.New(cache.Options{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: cfg.ResolveTTL(),
		MaxSize:    cfg.CacheMaxSize,
	})
	if err != nil {
		slog.Warn("cache backend unavailable, using memory", "error", err)
		cacher, _ = cache.New(cache.Options{DefaultTTL: cfg.ResolveTTL(), MaxSize: cfg.CacheMaxSize})
	}
	defer func() { _ = cacher.Close() }()
	res := resolver.New(st, cacher, cfg.ResolveTTL(), logger)

	// Template renderer over the embedded templates
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		IsDev:       cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Background scheduler
	if cfg.SchedulerEnabled {
		sched, err := scheduler.New(st, logger)
		if err != nil {
			return fmt.Errorf("initializing scheduler: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	frontendHandler := handler.NewFrontend(st, renderer, logger, cfg.BaseURL)
	adminHandler := handler.NewAdmin(st, launcher, res, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)

	// Admin JSON API
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.AdminToken))
		r.Post("/websites", adminHandler.CreateWebsite)
		r.Get("/websites", adminHandler.ListWebsites)
		r.Delete("/websites/{id}", adminHandler.DeleteWebsite)
		r.Get("/events", adminHandler.ListEvents)
	})

	// Uploaded portraits
	uploadsHandler := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Handle("/uploads/*", uploadsHandler)

	// Public tenant routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.ResolveWebsite(res))
		r.Use(middleware.LocalizedSlugs)

		r.Get("/", frontendHandler.Home)
		r.Get("/blogg", frontendHandler.Blog)
		r.Get("/blogg/{slug}", frontendHandler.BlogPost)
		r.Get("/om-oss", frontendHandler.About)
		r.Get("/kontakt", frontendHandler.Contact)
		r.Get("/forfattare/{slug}", frontendHandler.Author)
		r.Get("/feed.xml", frontendHandler.Feed)
		r.Get("/sitemap.xml", frontendHandler.Sitemap)
		r.Get("/robots.txt", frontendHandler.Robots)

		// Catch-all keeps the resolver middleware on 404s so unknown
		// paths on a known site render the in-site 404 page.
		r.Handle("/*", http.HandlerFunc(frontendHandler.NotFound))
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
