package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gallerysearch/internal/config"
	"gallerysearch/internal/store/sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "gallerysearch",
	Short: "A search and classification engine for local media libraries",
	Long: `Gallery Search indexes a directory of photos and videos, attaches
ML classifier labels to them, and answers free-text queries combining
structured filters (dates, media types, sizes), lexical matching and
confidence-ranked label classification. It also computes smart albums
from the label corpus.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// openStore opens the SQLite store configured via GALLERY_DB_PATH.
func openStore(cfg *config.Config) (*sqlite.Store, error) {
	st, err := sqlite.New(cfg.Library.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", cfg.Library.DBPath, err)
	}
	return st, nil
}
