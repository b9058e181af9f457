package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/verte-zerg/strophe/internal/lexicon"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	analyzer := New(lexicon.Default())
	for _, text := range []string{"", "   \n  ", "\t\n\t"} {
		if _, err := analyzer.Analyze(text); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("Analyze(%q): expected ErrEmptyInput, got %v", text, err)
		}
	}
}

func TestAnalyzeTwoLinePoem(t *testing.T) {
	analyzer := New(lexicon.Default())
	result, err := analyzer.Analyze("The cat sat on the mat\nThe dog sat on a log")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(result.Meter) != 2 {
		t.Fatalf("expected 2 meter lines, got %d", len(result.Meter))
	}
	if result.Meter[0].Syllables != 6 || result.Meter[1].Syllables != 6 {
		t.Fatalf("unexpected syllable counts: %+v", result.Meter)
	}
	for _, m := range result.Meter {
		if len(m.Pattern) != m.Syllables {
			t.Fatalf("pattern length %d != syllables %d", len(m.Pattern), m.Syllables)
		}
	}
	if result.RhymeScheme != "AB" {
		t.Fatalf("expected scheme AB, got %q", result.RhymeScheme)
	}
}

func TestAnalyzeDegenerateInputIsNotAnError(t *testing.T) {
	analyzer := New(lexicon.Default())
	result, err := analyzer.Analyze("12345 67890")
	if err != nil {
		t.Fatalf("numeric text must not fail: %v", err)
	}
	if len(result.Meter) != 1 || result.Meter[0].Syllables != 0 {
		t.Fatalf("unexpected meter for letterless line: %+v", result.Meter)
	}
	if result.RhymeScheme != "A" {
		t.Fatalf("unexpected scheme: %q", result.RhymeScheme)
	}
	if result.Sentiment.Polarity != 0 {
		t.Fatalf("unexpected polarity: %v", result.Sentiment.Polarity)
	}
}

func TestAnalyzeDeviceKeysAlwaysPresent(t *testing.T) {
	analyzer := New(lexicon.Default())
	result, err := analyzer.Analyze("word")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Devices.Alliteration == nil || result.Devices.Assonance == nil || result.Devices.Metaphor == nil {
		t.Fatalf("device lists must be empty, not nil: %+v", result.Devices)
	}
}

func TestSummarize(t *testing.T) {
	analyzer := New(lexicon.Default())
	text := "love the sweet sea\nhate the bitter war"
	result, err := analyzer.Analyze(text)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	at := time.Unix(1700000000, 0)
	rec := Summarize(text, "poem.txt", result, at)
	if rec.Source != "poem.txt" || !rec.CreatedAt.Equal(at) {
		t.Fatalf("unexpected record header: %+v", rec)
	}
	if rec.LineCount != 2 || rec.WordCount != 8 {
		t.Fatalf("unexpected counts: %+v", rec)
	}
	if rec.Positive != 2 || rec.Negative != 3 {
		t.Fatalf("unexpected sentiment counts: %+v", rec)
	}
	wantSyllables := 0
	for _, m := range result.Meter {
		wantSyllables += m.Syllables
	}
	if rec.SyllableTotal != wantSyllables {
		t.Fatalf("syllable total %d != %d", rec.SyllableTotal, wantSyllables)
	}
	if rec.Poem != text {
		t.Fatalf("poem text not preserved")
	}
}
