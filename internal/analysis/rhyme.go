package analysis

import "strings"

// lineEnding returns the rhyme key for a line: the last 3 bytes of its
// last word, or the whole word when shorter. A line without words keys
// to the empty string.
func lineEnding(line string) string {
	words := Words(line)
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if len(last) <= 3 {
		return last
	}
	return last[len(last)-3:]
}

// rhymeScheme labels each line by its rhyme key in first-occurrence
// order: the first distinct key is A, the second B, and so on. Lines
// sharing a key share a label. Zero lines yield an empty scheme.
func rhymeScheme(text string) string {
	labels := map[string]string{}
	var scheme strings.Builder
	next := 0
	for _, line := range Lines(text) {
		ending := lineEnding(line)
		label, ok := labels[ending]
		if !ok {
			label = schemeLabel(next)
			labels[ending] = label
			next++
		}
		scheme.WriteString(label)
	}
	return scheme.String()
}

// schemeLabel converts a 0-based group index to a letter label:
// A..Z, then AA, AB, ... (spreadsheet-column style), so more than 26
// rhyme groups widen the label instead of aliasing distinct endings.
func schemeLabel(n int) string {
	label := ""
	for {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
		if n < 0 {
			return label
		}
	}
}
