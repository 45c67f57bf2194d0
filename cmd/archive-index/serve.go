// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yukioitsuki/archive-index/internal/serve"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated index over HTTP for preview",
	Long: `Serve runs a local HTTP server for the generated index page. Mounting
the archive tree with --archive-dir lets the page's relative PDF links
resolve without a hosted dataset. Stop with Ctrl-C.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("site-dir", ".", "directory holding the generated index page")
	serveCmd.Flags().String("archive-dir", "", "archive tree to mount for relative PDF links")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = viper.GetString("serve.addr")
	}
	siteDir, _ := cmd.Flags().GetString("site-dir")
	archiveDir, _ := cmd.Flags().GetString("archive-dir")

	logger := setupLogger()
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := types.ServeConfig{
		Addr:       addr,
		SiteDir:    siteDir,
		ArchiveDir: archiveDir,
		Index:      viper.GetString("site.output"),
	}
	return serve.Serve(ctx, cfg, logger)
}

func setupLogger() *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	))
}
