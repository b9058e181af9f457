package analysis

import "strings"

const vowels = "aeiouy"

// CountSyllables approximates the syllable count of a single word by
// counting maximal vowel runs, with a silent trailing 'e' dropped first.
// Every non-empty word counts as at least one syllable; so does the
// empty string, which the tokenizer never produces.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) > 1 && strings.HasSuffix(word, "e") {
		word = word[:len(word)-1]
	}
	runs := 0
	inRun := false
	for i := 0; i < len(word); i++ {
		if strings.IndexByte(vowels, word[i]) >= 0 {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if runs < 1 {
		return 1
	}
	return runs
}
