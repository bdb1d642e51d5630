package main

import (
	"context"

	"github.com/occasionlabs/convo-insights/analysis"
	"github.com/occasionlabs/convo-insights/analysis/provider"
)

// verdictSchema is generated once per process. The category enum and the
// nullable improvement fields cannot be expressed through reflection tags,
// so they are injected after generation.
var verdictSchema = buildVerdictSchema()

func buildVerdictSchema() map[string]interface{} {
	schema := provider.GenerateSchema[analysis.ClassificationVerdict]()
	provider.SetItemsEnum(schema, "categories", analysis.CategoryLabels)
	provider.AllowNull(schema, "to_improve_understanding")
	provider.AllowNull(schema, "to_improve_performance")
	return schema
}

// openAIGrader adapts the provider client to the analysis.Classifier
// boundary.
type openAIGrader struct {
	client *provider.Client
}

func (g openAIGrader) Classify(ctx context.Context, conv analysis.Conversation) (analysis.ClassificationVerdict, error) {
	input := "Analyze the following conversation transcript:\n\n" + analysis.BuildTranscriptPrompt(conv)
	var verdict analysis.ClassificationVerdict
	if err := g.client.Request(ctx, "conversation_analysis", gradingRubric, input, verdictSchema, &verdict); err != nil {
		return analysis.ClassificationVerdict{}, err
	}
	return verdict, nil
}
