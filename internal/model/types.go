// Package model defines shared data structures.
package model

import "time"

// MeterLine holds the syllable analysis for a single poem line.
type MeterLine struct {
	// Line is the trimmed original line.
	Line string `toml:"line"`
	// Syllables is the estimated syllable count over the line's words.
	Syllables int `toml:"syllables"`
	// Pattern is a placeholder stress string of length Syllables.
	// It is not a real scansion; the length is the contract.
	Pattern string `toml:"pattern"`
}

// Devices lists detected literary devices as adjacent word pairs.
// Slices may be empty but are always distinct fields, never absent.
type Devices struct {
	Alliteration []string `toml:"alliteration"`
	Assonance    []string `toml:"assonance"`
	Metaphor     []string `toml:"metaphor"`
}

// Sentiment holds lexicon hit counts and the normalized polarity.
type Sentiment struct {
	// Polarity is in [-1, 1], rounded to 2 decimals.
	Polarity float64 `toml:"polarity"`
	Positive int     `toml:"positive"`
	Negative int     `toml:"negative"`
}

// Analysis is the complete result of analyzing one poem.
type Analysis struct {
	Meter       []MeterLine `toml:"meter"`
	RhymeScheme string      `toml:"rhyme_scheme"`
	Devices     Devices     `toml:"devices"`
	Sentiment   Sentiment   `toml:"sentiment"`
}

// Record is a persisted analysis summary as stored in history.
type Record struct {
	ID                int64
	CreatedAt         time.Time
	Source            string
	LineCount         int
	WordCount         int
	SyllableTotal     int
	RhymeScheme       string
	Polarity          float64
	Positive          int
	Negative          int
	AlliterationCount int
	AssonanceCount    int
	MetaphorCount     int
	Poem              string
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Source string
	Since  *time.Time
	Last   int
}
