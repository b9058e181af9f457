package report

import (
	"context"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/strophe/internal/model"
	"github.com/verte-zerg/strophe/internal/store"
)

// BuildHistory loads history records and applies the Last limit.
func BuildHistory(ctx context.Context, st *store.Store, cfg model.HistoryConfig) ([]model.Record, error) {
	records, err := st.ListAnalyses(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}
	return records, nil
}

// RenderHistory prints a summary, a polarity sparkline, and a table of
// past analyses. Source labels are truncated to fit the given width.
func RenderHistory(w io.Writer, records []model.Record, width int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No analyses found.")
		return err
	}

	var totalPolarity float64
	best := records[0].Polarity
	worst := records[0].Polarity
	polarities := make([]float64, len(records))
	for i, rec := range records {
		totalPolarity += rec.Polarity
		if rec.Polarity > best {
			best = rec.Polarity
		}
		if rec.Polarity < worst {
			worst = rec.Polarity
		}
		polarities[i] = rec.Polarity
	}

	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analyses: %d\n", len(records)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Polarity: %.2f\n", totalPolarity/float64(len(records))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Polarity: %.2f\n", best); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Worst Polarity: %.2f\n", worst); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Polarity: %s\n\n", Sparkline(polarities)); err != nil {
		return err
	}

	sourceWidth := width / 4
	if sourceWidth < 10 {
		sourceWidth = 10
	}
	headers := []string{"Date", "Source", "Lines", "Syllables", "Scheme", "Polarity", "Devices"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		devices := rec.AlliterationCount + rec.AssonanceCount + rec.MetaphorCount
		rows = append(rows, []string{
			rec.CreatedAt.Format("2006-01-02 15:04"),
			runewidth.Truncate(rec.Source, sourceWidth, "…"),
			fmt.Sprintf("%d", rec.LineCount),
			fmt.Sprintf("%d", rec.SyllableTotal),
			rec.RhymeScheme,
			fmt.Sprintf("%.2f", rec.Polarity),
			fmt.Sprintf("%d", devices),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
