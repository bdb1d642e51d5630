package analysis

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/occasionlabs/convo-insights/analysis/fileutils"
	"github.com/occasionlabs/convo-insights/analysis/provider"
)

// Classifier is the remote grading boundary: one conversation in, one
// schema-constrained verdict or a failure out.
type Classifier interface {
	Classify(ctx context.Context, conv Conversation) (ClassificationVerdict, error)
}

// maxPromptTranscriptChars caps the transcript sent per request so one
// pathological conversation cannot blow the context window.
const maxPromptTranscriptChars = 80_000

// BuildTranscriptPrompt renders a conversation as "Sender: text" lines
// joined by blank lines, in message order.
func BuildTranscriptPrompt(conv Conversation) string {
	lines := make([]string, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		lines = append(lines, m.Sender+": "+m.Text)
	}
	return fileutils.Truncate(strings.Join(lines, "\n\n"), maxPromptTranscriptChars)
}

// GradeOptions controls one sequential batch run.
type GradeOptions struct {
	// Start/End select a 0-based half-open range over the conversation
	// list. Both nil means the whole list.
	Start *int
	End   *int
	// Delay is the fixed pause inserted between successive classification
	// calls to stay under the service rate limit.
	Delay time.Duration
}

// GradeResult accumulates one batch run.
type GradeResult struct {
	Records            []AnalysisRecord
	Failed             int
	ContractViolations int
}

// GradeAll classifies conversations one at a time, in order. A failed
// conversation is logged, counted, and skipped — never retried, and never
// represented by a placeholder in the results. Verdicts violating the
// nullability contract are coerced and logged apart from transport
// failures.
func GradeAll(ctx context.Context, classifier Classifier, convs []Conversation, opts GradeOptions, logger *zap.Logger) (GradeResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	selected := convs
	if opts.Start != nil && opts.End != nil {
		start, end := *opts.Start, *opts.End
		if start < 0 {
			start = 0
		}
		if end > len(convs) {
			end = len(convs)
		}
		if start >= end {
			return GradeResult{}, nil
		}
		selected = convs[start:end]
	}

	var res GradeResult
	for i, conv := range selected {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		verdict, err := classifier.Classify(ctx, conv)
		if err != nil {
			res.Failed++
			logger.Warn("classification failed",
				zap.String("conversation_id", conv.Metadata.ConversationID),
				zap.String("error_class", provider.ErrorClass(err)),
				zap.Error(err))
		} else {
			if violations := EnforceVerdictContract(&verdict); len(violations) > 0 {
				res.ContractViolations += len(violations)
				logger.Warn("verdict contract violation coerced",
					zap.String("conversation_id", conv.Metadata.ConversationID),
					zap.Strings("fields", violations))
			}
			res.Records = append(res.Records, AnalysisRecord{
				ConversationID:    conv.Metadata.ConversationID,
				LLMClassification: verdict,
			})
		}

		if (i+1)%10 == 0 {
			logger.Info("grading progress",
				zap.Int("done", i+1),
				zap.Int("total", len(selected)),
				zap.Int("failed", res.Failed))
		}

		if opts.Delay > 0 && i < len(selected)-1 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}
	}
	return res, nil
}
