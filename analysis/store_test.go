package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadResults_MissingFile(t *testing.T) {
	t.Parallel()

	got := LoadResults(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	if len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestLoadResults_CorruptFileDegradesToEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "classification_results.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := LoadResults(path, zap.NewNop()); len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestSaveResults_AppendsAcrossRuns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "classification_results.json")
	logger := zap.NewNop()

	first := []AnalysisRecord{record(SentimentPositive, RatingGood, RatingGood, CategoryOther)}
	first[0].ConversationID = "c1"

	report, err := SaveResults(path, first, false, logger)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if report.New != 1 || report.Skipped != 0 || report.Total != 1 {
		t.Fatalf("first report=%+v", report)
	}

	second := []AnalysisRecord{record(SentimentNegative, RatingPoor, RatingPoor, CategoryOther)}
	second[0].ConversationID = "c2"

	report, err = SaveResults(path, second, false, logger)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if report.New != 1 || report.Total != 2 {
		t.Fatalf("second report=%+v", report)
	}

	stored := LoadResults(path, logger)
	if len(stored) != 2 {
		t.Fatalf("stored len=%d, want 2", len(stored))
	}
	if stored[0].ConversationID != "c1" || stored[1].ConversationID != "c2" {
		t.Fatalf("stored order: %q, %q", stored[0].ConversationID, stored[1].ConversationID)
	}
}

func TestSaveResults_DuplicatesAppendByDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "classification_results.json")
	logger := zap.NewNop()

	rec := record(SentimentNeutral, RatingGood, RatingGood, CategoryOther)
	rec.ConversationID = "c1"

	if _, err := SaveResults(path, []AnalysisRecord{rec}, false, logger); err != nil {
		t.Fatalf("save: %v", err)
	}
	report, err := SaveResults(path, []AnalysisRecord{rec}, false, logger)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if report.New != 1 || report.Total != 2 {
		t.Fatalf("report=%+v, want the duplicate appended", report)
	}
}

func TestSaveResults_DedupeSkipsKnownConversations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "classification_results.json")
	logger := zap.NewNop()

	rec := record(SentimentNeutral, RatingGood, RatingGood, CategoryOther)
	rec.ConversationID = "c1"
	if _, err := SaveResults(path, []AnalysisRecord{rec}, true, logger); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := record(SentimentPositive, RatingGood, RatingGood, CategoryOther)
	fresh.ConversationID = "c2"

	report, err := SaveResults(path, []AnalysisRecord{rec, fresh}, true, logger)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if report.New != 1 || report.Skipped != 1 || report.Total != 2 {
		t.Fatalf("report=%+v", report)
	}

	stored := LoadResults(path, logger)
	if len(stored) != 2 || stored[1].ConversationID != "c2" {
		t.Fatalf("stored=%+v", stored)
	}
}

func TestSaveResults_CorruptStoreStartsOver(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "classification_results.json")
	if err := os.WriteFile(path, []byte("]["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rec := record(SentimentNeutral, RatingGood, RatingGood, CategoryOther)
	rec.ConversationID = "c1"
	report, err := SaveResults(path, []AnalysisRecord{rec}, false, zap.NewNop())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if report.New != 1 || report.Total != 1 {
		t.Fatalf("report=%+v", report)
	}
}
