// Package main is the entry point for the Nishat Trading site server.
// It loads configuration, opens the document store, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nishat/internal/cache"
	"nishat/internal/config"
	"nishat/internal/database"
	"nishat/internal/document"
	"nishat/internal/handlers"
	"nishat/internal/middleware"
	"nishat/internal/render"
	"nishat/internal/router"
	"nishat/internal/storage"
	"nishat/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// A .env file is optional; variables already set in the environment win.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"store", cfg.StoreBackend,
	)
	if !cfg.IsDev() && cfg.AdminCookieValue == "true" {
		slog.Warn("ADMIN_COOKIE_VALUE is the default; set a random value")
	}

	backend, closer, err := openBackend(cfg)
	if err != nil {
		slog.Error("failed to open document store", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	catalogStore := store.NewCatalogStore(backend)
	heroStore := store.NewHeroStore(backend)

	// Seed both documents and bring hero records up to date before serving.
	ctx := context.Background()
	if _, err := catalogStore.ListCategories(ctx); err != nil {
		slog.Error("failed to initialize catalog", "error", err)
		os.Exit(1)
	}
	if err := heroStore.Migrate(ctx); err != nil {
		slog.Error("failed to migrate hero images", "error", err)
		os.Exit(1)
	}

	// Page cache in Valkey (optional, pages render on every request without it).
	var pageCache handlers.PageCache = cache.Disabled{}
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
		slog.Info("page cache enabled", "host", cfg.ValkeyHost)
	}

	uploader, err := openUploader(cfg)
	if err != nil {
		slog.Error("failed to initialize upload storage", "error", err)
		os.Exit(1)
	}

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Five failed logins per client and email every fifteen minutes.
	loginThrottle := middleware.NewLoginThrottle(5, 15*time.Minute)
	defer loginThrottle.Stop()

	r := router.New(router.Options{
		AdminSentinel: cfg.AdminCookieValue,
		HSTS:          !cfg.IsDev(),
		PublicDir:     cfg.PublicDir,
	}, router.Handlers{
		Catalog: handlers.NewCatalog(catalogStore, pageCache),
		Hero:    handlers.NewHero(heroStore, pageCache),
		Upload:  handlers.NewUpload(uploader),
		Auth: handlers.NewAuth(handlers.AuthConfig{
			Email:        cfg.AdminEmail,
			Password:     cfg.AdminPassword,
			PasswordHash: cfg.AdminPasswordHash,
			CookieValue:  cfg.AdminCookieValue,
			Secure:       !cfg.IsDev(),
			Throttle:     loginThrottle,
		}),
		Admin:  handlers.NewAdmin(catalogStore, heroStore),
		Public: handlers.NewPublic(renderer, catalogStore, heroStore, pageCache),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// openBackend opens the configured document backend. The postgres backend
// connects and migrates the documents table first.
func openBackend(cfg *config.Config) (document.Backend, io.Closer, error) {
	opts := document.Options{
		Dir:        cfg.DataDir,
		SQLitePath: cfg.SQLitePath,
	}

	var db *sql.DB
	if cfg.StoreBackend == document.KindPostgres {
		var err error
		db, err = database.Connect(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		opts.DB = db
	}

	backend, closer, err := document.New(cfg.StoreBackend, opts)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, err
	}
	if db != nil {
		return backend, db, nil
	}
	return backend, closer, nil
}

// openUploader returns S3 storage when configured, otherwise the public
// directory on disk.
func openUploader(cfg *config.Config) (handlers.Uploader, error) {
	if cfg.S3Enabled() {
		s3, err := storage.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			return nil, err
		}
		if s3 != nil {
			slog.Info("uploads stored in s3", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
			return s3, nil
		}
	}
	disk := storage.NewDisk(cfg.PublicDir)
	slog.Info("uploads stored on disk", "dir", disk.Dir())
	return disk, nil
}
