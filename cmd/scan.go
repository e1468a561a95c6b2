package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"gallerysearch/internal/config"
	"gallerysearch/internal/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Index a media directory",
	Long: `Walk a directory tree and index every recognized image and video.
Rescanning is safe: already indexed paths keep their ids and get their
metadata refreshed.

Classifier output can be imported in the same run with --labels-file.
The file holds one line per media file: the absolute path, a tab, and
comma-separated label:confidence pairs, e.g.

  /photos/Camera/IMG_001.jpg	dog:0.95,pet:0.80`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("labels-file", "", "Import classifier labels from this file after indexing")
	scanCmd.Flags().Bool("quiet", false, "Suppress the progress bar")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	dir := cfg.Library.MediaDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf("no media directory: pass one as argument or set GALLERY_MEDIA_DIR")
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	s := scanner.New(st)
	opts := scanner.ScanOptions{}

	var bar *progressbar.ProgressBar
	if !mustGetBool(cmd, "quiet") {
		opts.OnProgress = func(p scanner.ProgressInfo) {
			if bar == nil {
				bar = progressbar.NewOptions(p.Total,
					progressbar.OptionSetDescription("Indexing media"),
					progressbar.OptionShowCount(),
					progressbar.OptionShowIts(),
					progressbar.OptionSetItsString("files"),
					progressbar.OptionShowElapsedTimeOnFinish(),
					progressbar.OptionFullWidth(),
					progressbar.OptionSetTheme(progressbar.Theme{
						Saucer:        "=",
						SaucerHead:    ">",
						SaucerPadding: " ",
						BarStart:      "[",
						BarEnd:        "]",
					}),
				)
			}
			_ = bar.Set(p.Current)
		}
	}

	result, err := s.Scan(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if bar != nil {
		fmt.Println() // New line after progress bar
	}

	fmt.Printf("Indexed %d files (%d skipped)\n", result.IndexedCount, result.SkippedCount)
	for _, scanErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", scanErr)
	}

	if labelsFile := mustGetString(cmd, "labels-file"); labelsFile != "" {
		f, err := os.Open(labelsFile)
		if err != nil {
			return fmt.Errorf("opening labels file: %w", err)
		}
		defer f.Close()

		imported, err := s.ImportLabels(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("importing labels: %w", err)
		}
		fmt.Printf("Imported labels for %d files\n", imported)
	}

	return nil
}
