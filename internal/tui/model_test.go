package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/strophe/internal/analysis"
	"github.com/verte-zerg/strophe/internal/lexicon"
)

func newTestModel() *Model {
	return NewModel(analysis.New(lexicon.Default()), nil, false)
}

func TestRenderFooterEditCounts(t *testing.T) {
	m := newTestModel()
	m.textarea.SetValue("The cat sat\non the mat")
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Lines 2", "Words 6", "Esc analyze", "Ctrl+C quit"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestRunAnalysisEmptyPoem(t *testing.T) {
	m := newTestModel()
	m.runAnalysis()
	if m.mode != modeEdit {
		t.Fatalf("empty poem must stay in edit mode")
	}
	if m.errMsg == "" {
		t.Fatalf("expected inline error for empty poem")
	}
	if !strings.Contains(m.renderFooter(), m.errMsg) {
		t.Fatalf("footer must surface the error")
	}
}

func TestRunAnalysisSwitchesToReport(t *testing.T) {
	m := newTestModel()
	m.textarea.SetValue("The cat sat on the mat\nThe dog sat on a log")
	m.runAnalysis()
	if m.mode != modeReport {
		t.Fatalf("expected report mode after analysis")
	}
	if m.result.RhymeScheme != "AB" {
		t.Fatalf("unexpected scheme: %q", m.result.RhymeScheme)
	}
	if !containsAll(m.renderFooter(), []string{"s save", "e edit", "n new", "q quit"}) {
		t.Fatalf("report footer missing keys: %s", m.renderFooter())
	}
}

func TestSaveWithoutStore(t *testing.T) {
	m := newTestModel()
	m.textarea.SetValue("a little poem")
	m.runAnalysis()
	m.saveAnalysis()
	if m.saved {
		t.Fatalf("save must fail without a store")
	}
	if m.statusMsg == "" {
		t.Fatalf("expected a status message")
	}
}

func containsAll(s string, parts []string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}
