package analysis

import (
	"strings"

	"github.com/verte-zerg/strophe/internal/model"
)

// detectDevices scans the flattened word sequence of the whole text for
// alliteration, assonance, and naive metaphor pairings. Each detector is
// an independent pass over adjacent pairs; overlapping pairs may all be
// reported and nothing is deduplicated.
func detectDevices(text string) model.Devices {
	words := Words(text)
	return model.Devices{
		Alliteration: findAlliteration(words),
		Assonance:    findAssonance(words),
		Metaphor:     findMetaphors(words),
	}
}

// findAlliteration records adjacent pairs sharing a first letter.
func findAlliteration(words []string) []string {
	found := []string{}
	for i := 0; i+1 < len(words); i++ {
		if words[i] != "" && words[i+1] != "" && words[i][0] == words[i+1][0] {
			found = append(found, words[i]+" "+words[i+1])
		}
	}
	return found
}

// findAssonance records adjacent pairs whose last vowels match.
func findAssonance(words []string) []string {
	found := []string{}
	for i := 0; i+1 < len(words); i++ {
		v1 := lastVowel(words[i])
		v2 := lastVowel(words[i+1])
		if v1 != 0 && v1 == v2 {
			found = append(found, words[i]+" "+words[i+1])
		}
	}
	return found
}

// findMetaphors records adjacent pairs of words longer than 3 letters as
// "w1 is like w2". This is a deliberately naive placeholder heuristic,
// not genuine figurative-language detection.
func findMetaphors(words []string) []string {
	found := []string{}
	for i := 0; i+1 < len(words); i++ {
		if len(words[i]) > 3 && len(words[i+1]) > 3 {
			found = append(found, words[i]+" is like "+words[i+1])
		}
	}
	return found
}

// lastVowel returns the last vowel byte of a word, or 0 if none.
func lastVowel(word string) byte {
	for i := len(word) - 1; i >= 0; i-- {
		if strings.IndexByte(vowels, word[i]) >= 0 {
			return word[i]
		}
	}
	return 0
}
