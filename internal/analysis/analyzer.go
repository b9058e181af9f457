package analysis

import (
	"errors"
	"strings"

	"github.com/verte-zerg/strophe/internal/lexicon"
	"github.com/verte-zerg/strophe/internal/model"
)

// ErrEmptyInput is returned when the poem text is empty or whitespace-only.
// It is the only error the analyzer itself produces.
var ErrEmptyInput = errors.New("empty poem text")

// Analyzer runs the four analyses over a poem. It holds only the
// sentiment lexicon and is safe for concurrent use.
type Analyzer struct {
	lex lexicon.Lexicon
}

// New returns an Analyzer using the given sentiment lexicon.
func New(lex lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze runs meter, rhyme, device, and sentiment analysis over text.
// Each analysis derives its own lines and words from the raw text.
// Unusual inputs (no letters, no newlines, non-ASCII) are not errors;
// they degenerate to empty or zero-valued results.
func (a *Analyzer) Analyze(text string) (model.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return model.Analysis{}, ErrEmptyInput
	}
	return model.Analysis{
		Meter:       meterOf(text),
		RhymeScheme: rhymeScheme(text),
		Devices:     detectDevices(text),
		Sentiment:   scoreSentiment(text, a.lex),
	}, nil
}
