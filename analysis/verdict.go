package analysis

// Sentiment values in reporting order.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Rating values for bot understanding and performance.
const (
	RatingGood       = "good"
	RatingAcceptable = "acceptable"
	RatingPoor       = "poor"
)

var (
	// SentimentValues is the fixed overall_sentiment domain, in the order
	// distributions are reported.
	SentimentValues = []string{SentimentPositive, SentimentNeutral, SentimentNegative}
	// RatingValues is the fixed rating domain for bot_understanding and
	// bot_performance, in reporting order.
	RatingValues = []string{RatingGood, RatingAcceptable, RatingPoor}
)

// CategoryOther is the catch-all category the classifier falls back to when
// nothing else in the taxonomy applies.
const CategoryOther = "Diğer"

// CategoryLabels is the fixed taxonomy the classifier chooses categories
// from. Order matters: it is injected verbatim into the response schema.
var CategoryLabels = []string{
	"Düğün Mekanları", "Düğün Organizasyon", "Kına Gecesi", "Nişan ve Söz",
	"Mezuniyet ve Balo", "Doğum Günü & Baby Shower", "Düğün Fotoğrafçıları",
	"Catering Firmaları", "Gelinlik ve Moda Evleri", "Abiye ve Damatlık",
	"Orkestra & DJ", "Saç ve Makyaj", "Davetiye ve Hediyelikler", "Pasta",
	"Alyans ve Takı", "Balayı", CategoryOther,
}

// ClassificationVerdict is the schema-constrained object the classifier
// returns for one conversation. The two improvement fields are nullable by
// contract: null exactly when the matching rating is "good". The category
// enum and the nullable types are injected into the generated schema by the
// grader; the jsonschema tags carry what reflection can express directly.
type ClassificationVerdict struct {
	OverallSentiment       string   `json:"overall_sentiment" jsonschema:"enum=positive,enum=neutral,enum=negative,description=User's overall sentiment across the conversation"`
	BotUnderstanding       string   `json:"bot_understanding" jsonschema:"enum=poor,enum=acceptable,enum=good,description=How well the bot understood the user's request"`
	BotPerformance         string   `json:"bot_performance" jsonschema:"enum=poor,enum=acceptable,enum=good,description=How well the bot performed in finding relevant options"`
	Categories             []string `json:"categories" jsonschema:"minItems=1,maxItems=3,description=Up to 3 relevant categories from the predefined list"`
	ToImproveUnderstanding *string  `json:"to_improve_understanding" jsonschema:"description=Explanation of understanding issues in Turkish (null if good)"`
	ToImprovePerformance   *string  `json:"to_improve_performance" jsonschema:"description=Explanation of performance issues in Turkish (null if good)"`
}

// AnalysisRecord pairs a conversation with its verdict; it is the unit
// persisted in the result store.
type AnalysisRecord struct {
	ConversationID    string                `json:"conversation_id"`
	LLMClassification ClassificationVerdict `json:"llm_classification"`
}

// EnforceVerdictContract applies the nullability rule the classifier is
// instructed, but not forced, to uphold: an improvement note must be null
// when its rating is "good". Violating notes are coerced to null and the
// affected field names returned so callers can log them apart from
// transport failures.
func EnforceVerdictContract(v *ClassificationVerdict) []string {
	var violations []string
	if v.BotUnderstanding == RatingGood && v.ToImproveUnderstanding != nil {
		v.ToImproveUnderstanding = nil
		violations = append(violations, "to_improve_understanding")
	}
	if v.BotPerformance == RatingGood && v.ToImprovePerformance != nil {
		v.ToImprovePerformance = nil
		violations = append(violations, "to_improve_performance")
	}
	return violations
}
