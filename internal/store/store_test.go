package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/strophe/internal/model"
)

func testRecord(i int) model.Record {
	return model.Record{
		CreatedAt:         time.Unix(0, 0).Add(time.Duration(i) * time.Minute),
		Source:            "poem.txt",
		LineCount:         4,
		WordCount:         20,
		SyllableTotal:     32,
		RhymeScheme:       "AABB",
		Polarity:          0.5,
		Positive:          2,
		Negative:          1,
		AlliterationCount: 1,
		AssonanceCount:    2,
		MetaphorCount:     3,
		Poem:              "a poem\nof two lines",
	}
}

func TestInsertAndListAnalyses(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "strophe.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := st.InsertAnalysis(ctx, testRecord(i))
		if err != nil {
			t.Fatalf("insert analysis: %v", err)
		}
		ids = append(ids, id)
	}

	records, err := st.ListAnalyses(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list analyses: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.ID != ids[i] {
			t.Fatalf("unexpected order: %+v", records)
		}
	}
	first := records[0]
	if first.RhymeScheme != "AABB" || first.Polarity != 0.5 || first.Poem != "a poem\nof two lines" {
		t.Fatalf("record fields not preserved: %+v", first)
	}
	if first.AlliterationCount != 1 || first.AssonanceCount != 2 || first.MetaphorCount != 3 {
		t.Fatalf("device counts not preserved: %+v", first)
	}
}

func TestListAnalysesFilters(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "strophe.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		rec := testRecord(i)
		if i == 2 {
			rec.Source = "interactive"
		}
		if _, err := st.InsertAnalysis(ctx, rec); err != nil {
			t.Fatalf("insert analysis: %v", err)
		}
	}

	bySource, err := st.ListAnalyses(ctx, model.HistoryConfig{Source: "interactive"})
	if err != nil {
		t.Fatalf("list by source: %v", err)
	}
	if len(bySource) != 1 || bySource[0].Source != "interactive" {
		t.Fatalf("unexpected source filter result: %+v", bySource)
	}

	since := time.Unix(0, 0).Add(90 * time.Second)
	bySince, err := st.ListAnalyses(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list by since: %v", err)
	}
	if len(bySince) != 1 {
		t.Fatalf("expected 1 record since %v, got %d", since, len(bySince))
	}
}
