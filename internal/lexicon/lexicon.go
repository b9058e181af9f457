// Package lexicon provides sentiment word sets and lexicon files.
package lexicon

// Set is a lookup set of lowercase words.
type Set map[string]struct{}

// NewSet builds a Set from a word list.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Lexicon pairs the positive and negative sentiment word sets.
// It is read-only after construction.
type Lexicon struct {
	Positive Set
	Negative Set
}

// Default returns the built-in sentiment lexicon.
func Default() Lexicon {
	return Lexicon{
		Positive: NewSet("love", "happy", "joy", "peace", "beautiful", "sweet", "good"),
		Negative: NewSet("hate", "sad", "pain", "war", "ugly", "bitter", "bad"),
	}
}
