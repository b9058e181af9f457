package analysis

import (
	"math"

	"github.com/verte-zerg/strophe/internal/lexicon"
	"github.com/verte-zerg/strophe/internal/model"
)

// scoreSentiment counts lexicon hits over the full word sequence and
// computes polarity = (pos-neg)/(pos+neg), or 0 with no hits. Polarity
// is rounded to 2 decimals, half away from zero (math.Round semantics).
func scoreSentiment(text string, lex lexicon.Lexicon) model.Sentiment {
	pos, neg := 0, 0
	for _, word := range Words(text) {
		switch {
		case lex.Positive.Contains(word):
			pos++
		case lex.Negative.Contains(word):
			neg++
		}
	}
	polarity := 0.0
	if total := pos + neg; total > 0 {
		polarity = math.Round(float64(pos-neg)/float64(total)*100) / 100
	}
	return model.Sentiment{Polarity: polarity, Positive: pos, Negative: neg}
}
