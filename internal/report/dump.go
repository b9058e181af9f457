package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/strophe/internal/model"
)

// WriteAnalysis writes the analysis to path as a TOML document. The
// encoding round-trips the full result shape. The file is written via a
// temp file and rename so a failed write never leaves a partial dump.
func WriteAnalysis(path string, a model.Analysis) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "analysis-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp output: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := toml.NewEncoder(writer).Encode(a); err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
