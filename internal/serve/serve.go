// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package serve runs a local preview server for the generated index page
// and, optionally, the archive tree so relative PDF links resolve.
package serve

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

const shutdownTimeout = 2 * time.Second

// Router builds the preview router: "/" serves the index page, every
// other path is resolved against the site directory first and then the
// archive directory when one is mounted.
func Router(cfg types.ServeConfig, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLog(logger))

	index := cfg.Index
	if index == "" {
		index = "index_local.html"
	}

	roots := []string{cfg.SiteDir}
	if cfg.ArchiveDir != "" {
		roots = append(roots, cfg.ArchiveDir)
	}

	engine.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.SiteDir, index))
	})

	engine.NoRoute(func(c *gin.Context) {
		p := path.Clean(c.Request.URL.Path)
		if strings.Contains(p, "..") {
			c.Status(http.StatusBadRequest)
			return
		}
		for _, root := range roots {
			full := filepath.Join(root, filepath.FromSlash(p))
			if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
				c.File(full)
				return
			}
		}
		c.Status(http.StatusNotFound)
	})

	return engine
}

// Serve runs the preview server until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, cfg types.ServeConfig, logger *zap.Logger) error {
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: Router(cfg, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	logger.Info("serving preview",
		zap.String("addr", cfg.Addr),
		zap.String("site_dir", cfg.SiteDir),
		zap.String("archive_dir", cfg.ArchiveDir))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// requestID tags every response with an X-Request-ID header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLog logs one line per request with method, path, status, and
// duration.
func requestLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		id, _ := c.Get("request_id")
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Any("request_id", id))
	}
}
