package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gallerysearch/internal/config"
	"gallerysearch/internal/engine"
	"gallerysearch/internal/store/sqlite"
)

var albumsCmd = &cobra.Command{
	Use:   "albums [id]",
	Short: "List smart albums",
	Long: `List the smart albums computed from the label corpus. Albums with
fewer matching items than the visibility threshold are hidden.

Pass an album id (e.g. "animals") to list its members instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAlbums,
}

func init() {
	rootCmd.AddCommand(albumsCmd)
}

func runAlbums(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	corpus, err := st.AllLabelRecords(ctx)
	if err != nil {
		return fmt.Errorf("loading label corpus: %w", err)
	}

	if len(args) == 1 {
		return printAlbumMembers(cmd, st, args[0], corpus)
	}

	albums := engine.EnumerateSmartAlbums(corpus)
	if len(albums) == 0 {
		fmt.Println("No smart albums visible yet. Index more labeled media.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tITEMS")
	fmt.Fprintln(w, "--\t----\t-----")
	for _, a := range albums {
		fmt.Fprintf(w, "%s\t%s\t%d\n", a.ID, a.DisplayName, a.ItemCount)
	}
	return w.Flush()
}

func printAlbumMembers(cmd *cobra.Command, st *sqlite.Store, id string, corpus []engine.LabelRecord) error {
	known := false
	for _, def := range engine.SmartAlbumDefinitions() {
		if def.ID == id {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown smart album %q", id)
	}

	media, err := st.AllMedia(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing media: %w", err)
	}

	items := engine.MaterializeSmartAlbum(id, corpus, media)
	if len(items) == 0 {
		fmt.Println("No members.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFOLDER\tPATH")
	fmt.Fprintln(w, "----\t------\t----")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.DisplayName, item.BucketName, item.Path)
	}
	return w.Flush()
}
