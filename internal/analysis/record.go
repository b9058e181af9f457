package analysis

import (
	"time"

	"github.com/verte-zerg/strophe/internal/model"
)

// Summarize flattens an analysis into a history record for persistence.
func Summarize(text, source string, a model.Analysis, at time.Time) model.Record {
	syllables := 0
	for _, m := range a.Meter {
		syllables += m.Syllables
	}
	return model.Record{
		CreatedAt:         at,
		Source:            source,
		LineCount:         len(a.Meter),
		WordCount:         len(Words(text)),
		SyllableTotal:     syllables,
		RhymeScheme:       a.RhymeScheme,
		Polarity:          a.Sentiment.Polarity,
		Positive:          a.Sentiment.Positive,
		Negative:          a.Sentiment.Negative,
		AlliterationCount: len(a.Devices.Alliteration),
		AssonanceCount:    len(a.Devices.Assonance),
		MetaphorCount:     len(a.Devices.Metaphor),
		Poem:              text,
	}
}
