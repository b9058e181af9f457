package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/strophe/internal/model"
)

// devicePreview limits how many examples of each device kind the
// non-verbose report shows.
const devicePreview = 3

// RenderAnalysis prints a human-readable analysis report. Unless
// verbose is set, each device list is truncated to a short preview.
func RenderAnalysis(w io.Writer, a model.Analysis, verbose bool) error {
	if _, err := fmt.Fprintf(w, "Rhyme Scheme: %s\n\n", schemeOrDash(a.RhymeScheme)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Meter"); err != nil {
		return err
	}
	if len(a.Meter) == 0 {
		if _, err := fmt.Fprintln(w, "No lines found."); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(a.Meter))
		for _, m := range a.Meter {
			rows = append(rows, []string{fmt.Sprintf("%d", m.Syllables), m.Line})
		}
		for _, line := range formatTable([]string{"Syllables", "Line"}, rows, map[int]bool{0: true}) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Literary Devices"); err != nil {
		return err
	}
	kinds := []struct {
		name     string
		examples []string
	}{
		{"Alliteration", a.Devices.Alliteration},
		{"Assonance", a.Devices.Assonance},
		{"Metaphor", a.Devices.Metaphor},
	}
	found := false
	for _, kind := range kinds {
		if len(kind.examples) == 0 {
			continue
		}
		found = true
		if err := renderDeviceKind(w, kind.name, kind.examples, verbose); err != nil {
			return err
		}
	}
	if !found {
		if _, err := fmt.Fprintln(w, "None found."); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Sentiment"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Polarity: %.2f (-1 to 1)\n", a.Sentiment.Polarity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Positive words: %d\n", a.Sentiment.Positive); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Negative words: %d\n", a.Sentiment.Negative); err != nil {
		return err
	}
	return nil
}

func renderDeviceKind(w io.Writer, name string, examples []string, verbose bool) error {
	shown := examples
	hidden := 0
	if !verbose && len(shown) > devicePreview {
		hidden = len(shown) - devicePreview
		shown = shown[:devicePreview]
	}
	if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
		return err
	}
	for _, example := range shown {
		if _, err := fmt.Fprintf(w, "- %s\n", example); err != nil {
			return err
		}
	}
	if hidden > 0 {
		if _, err := fmt.Fprintf(w, "(%d more)\n", hidden); err != nil {
			return err
		}
	}
	return nil
}

func schemeOrDash(scheme string) string {
	if scheme == "" {
		return "-"
	}
	return scheme
}
