// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the archive-index CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yukioitsuki/archive-index/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// hubToken holds the dataset access token loaded at startup. Empty for
// public datasets.
var hubToken string

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "archive-index/0.1"
)

// rootCmd is the base command for the archive-index CLI.
var rootCmd = &cobra.Command{
	Use:   "archive-index",
	Short: "Generate browsable indexes of a PDF document archive",
	Long: `archive-index walks a local archive tree or lists a hosted dataset and
emits human-browsable indexes: a Markdown inventory grouped by top-level
directory and year, an HTML page with collapsible sections, a
machine-readable manifest, and a SQLite catalog.

Each run recomputes the full index from its source; nothing is cached
between invocations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		token, err := secrets.Token(".secrets/")
		if err != nil {
			return err
		}
		hubToken = token
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./archive-index.yaml or ~/.config/archive-index/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("archive-index")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "archive-index"))
		}
	}

	viper.SetEnvPrefix("ARCHIVE_INDEX")
	viper.AutomaticEnv()

	viper.SetDefault("hub.repo_id", "yukioitsuki/snowden_archived")
	viper.SetDefault("hub.suffix", ".pdf")
	viper.SetDefault("scan.exclude_folder", ".files")
	viper.SetDefault("inventory.title", "Archive – File Inventory")
	viper.SetDefault("inventory.output", "INVENTORY.md")
	viper.SetDefault("site.template", "templates.html")
	viper.SetDefault("site.output", "index_local.html")
	viper.SetDefault("catalog.path", "catalog.db")
	viper.SetDefault("serve.addr", ":8080")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
