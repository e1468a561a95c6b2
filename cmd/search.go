package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gallerysearch/internal/config"
	"gallerysearch/internal/engine"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the indexed library",
	Long: `Run a free-text search over the indexed library. Queries may combine
structured filters with lexical and label matching:

  gallerysearch search dog
  gallerysearch search photos from last month
  gallerysearch search large videos 2023`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	media, err := st.AllMedia(ctx)
	if err != nil {
		return fmt.Errorf("listing media: %w", err)
	}
	corpus, err := st.AllLabelRecords(ctx)
	if err != nil {
		return fmt.Errorf("loading label corpus: %w", err)
	}

	query := strings.Join(args, " ")
	result := engine.SearchLibrary(query, media, corpus, time.Now())

	if len(result.MatchedAlbums) == 0 && len(result.MatchedMedia) == 0 {
		fmt.Println("No results.")
		return nil
	}

	if len(result.MatchedAlbums) > 0 {
		fmt.Printf("Folders (%d):\n", len(result.MatchedAlbums))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tITEMS")
		fmt.Fprintln(w, "----\t-----")
		for _, a := range result.MatchedAlbums {
			fmt.Fprintf(w, "%s\t%d\n", a.BucketName, a.ItemCount)
		}
		w.Flush()
		fmt.Println()
	}

	if len(result.MatchedMedia) > 0 {
		scores := make(map[string]engine.RankedResult, len(result.Ranked))
		for _, r := range result.Ranked {
			scores[r.MediaID] = r
		}

		fmt.Printf("Media (%d):\n", len(result.MatchedMedia))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tFOLDER\tLABEL\tSCORE")
		fmt.Fprintln(w, "----\t------\t-----\t-----")
		for _, item := range result.MatchedMedia {
			label, score := "", "-"
			if r, ok := scores[item.ID]; ok {
				label = r.MatchedLabel
				score = fmt.Sprintf("%.2f", r.Score)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.DisplayName, item.BucketName, label, score)
		}
		w.Flush()
	}

	return nil
}
