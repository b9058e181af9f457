package analysis

import (
	"strings"

	"github.com/verte-zerg/strophe/internal/model"
)

// patternFiller is the placeholder stress symbol. The pattern is not a
// real scansion; only its length (== syllable count) is meaningful.
const patternFiller = "0"

// meterOf builds one MeterLine per non-empty line of text.
func meterOf(text string) []model.MeterLine {
	lines := Lines(text)
	meter := make([]model.MeterLine, 0, len(lines))
	for _, line := range lines {
		syllables := 0
		for _, word := range Words(line) {
			syllables += CountSyllables(word)
		}
		meter = append(meter, model.MeterLine{
			Line:      line,
			Syllables: syllables,
			Pattern:   strings.Repeat(patternFiller, syllables),
		})
	}
	return meter
}
