package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads one word per line from a lexicon file. Blank lines and
// lines starting with '#' are skipped; words are lowercased. A word
// containing anything but ASCII letters and apostrophes is an error,
// as is a file with no words at all.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only lexicon.
			_ = cerr
		}
	}()

	set := Set{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if !validWord(word) {
			return nil, fmt.Errorf("invalid lexicon word %q in %s", word, path)
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("lexicon file is empty: %s", path)
	}
	return set, nil
}

// Export writes the set to path, one word per line, sorted. An existing
// file is only overwritten when force is set.
func Export(path string, set Set, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("lexicon file already exists: %s (use --force to overwrite)", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat lexicon file: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create lexicon dir: %w", err)
	}

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "lexicon-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp lexicon: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write lexicon: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush lexicon: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close lexicon: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write lexicon: %w", err)
	}
	return nil
}

func validWord(word string) bool {
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && ch != '\'' {
			return false
		}
	}
	return true
}
