// Package analysis implements heuristic literary analysis of poem text.
package analysis

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of ASCII letters and apostrophes.
var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// Lines splits text into trimmed, non-empty lines in document order.
func Lines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Words extracts lowercase word tokens from text in order of appearance,
// duplicates included. Text without letters yields no words.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
