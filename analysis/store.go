package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/occasionlabs/convo-insights/analysis/fileutils"
)

// DefaultResultsPath is the conventional result-store filename.
const DefaultResultsPath = "classification_results.json"

// LoadResults reads the persisted result store at path. A missing,
// unreadable, or corrupt store degrades to empty: prior results are only
// ever something to append after, never a reason to abort a run.
func LoadResults(path string, logger *zap.Logger) []AnalysisRecord {
	if logger == nil {
		logger = zap.NewNop()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("result store unreadable, starting fresh",
				zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	var records []AnalysisRecord
	if err := json.Unmarshal(b, &records); err != nil {
		logger.Warn("result store corrupt, starting fresh",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	return records
}

// SaveReport describes one store save.
type SaveReport struct {
	New     int // records appended by this save
	Skipped int // records skipped as duplicates (dedupe only)
	Total   int // store size after the save
}

// SaveResults appends records to the store at path and rewrites the whole
// file atomically. With dedupe set, records whose conversation id is
// already present (in the store or earlier in this batch) are skipped
// instead of appended; the default is a pure append.
func SaveResults(path string, records []AnalysisRecord, dedupe bool, logger *zap.Logger) (SaveReport, error) {
	existing := LoadResults(path, logger)

	appended := records
	skipped := 0
	if dedupe {
		seen := make(map[string]struct{}, len(existing))
		for _, r := range existing {
			seen[r.ConversationID] = struct{}{}
		}
		appended = make([]AnalysisRecord, 0, len(records))
		for _, r := range records {
			if _, dup := seen[r.ConversationID]; dup {
				skipped++
				continue
			}
			seen[r.ConversationID] = struct{}{}
			appended = append(appended, r)
		}
	}

	all := make([]AnalysisRecord, 0, len(existing)+len(appended))
	all = append(all, existing...)
	all = append(all, appended...)

	if err := fileutils.WriteJSONFileAtomic(path, all, true); err != nil {
		return SaveReport{}, fmt.Errorf("save results: %w", err)
	}
	return SaveReport{New: len(appended), Skipped: skipped, Total: len(all)}, nil
}
