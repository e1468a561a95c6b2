package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gallerysearch/internal/config"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List label frequencies in the corpus",
	Long: `Aggregate the label corpus and print how many media files carry each
label, with the average classifier confidence.`,
	RunE: runLabelsList,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().Int("min-count", 0, "Only show labels attached to at least N files")
}

func runLabelsList(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	minCount := mustGetInt(cmd, "min-count")

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.AllLabelRecords(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading label corpus: %w", err)
	}

	counts := make(map[string]int)
	confSums := make(map[string]float64)
	for _, rec := range records {
		for _, p := range rec.Labels {
			counts[p.Label]++
			confSums[p.Label] += p.Confidence
		}
	}

	type row struct {
		label string
		count int
	}
	rows := make([]row, 0, len(counts))
	for label, count := range counts {
		if count < minCount {
			continue
		}
		rows = append(rows, row{label, count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].label < rows[j].label
	})

	if len(rows) == 0 {
		fmt.Println("No labels found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tFILES\tAVG CONF")
	fmt.Fprintln(w, "-----\t-----\t--------")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", r.label, r.count, confSums[r.label]/float64(r.count))
	}
	return w.Flush()
}
