package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ValueCount is one value of a fixed-domain field with its count and share
// of total records.
type ValueCount struct {
	Value   string
	Count   int
	Percent float64
}

// CategoryCount is one category label with its occurrence count and share
// of total category occurrences (not total records).
type CategoryCount struct {
	Category string
	Count    int
	Percent  float64
}

// SummaryStats aggregates a batch of analysis records.
type SummaryStats struct {
	Total                    int
	Sentiment                []ValueCount
	Understanding            []ValueCount
	Performance              []ValueCount
	TopCategories            []CategoryCount
	TotalCategoryOccurrences int
}

// Summarize computes distribution statistics over records: frequency and
// percentage for each fixed-domain field, and the top 5 categories by
// occurrence. Category percentages use total category occurrences as the
// denominator; ties keep first-encountered order under the stable
// descending-count sort.
func Summarize(records []AnalysisRecord) SummaryStats {
	stats := SummaryStats{Total: len(records)}
	if len(records) == 0 {
		return stats
	}

	distribution := func(domain []string, get func(ClassificationVerdict) string) []ValueCount {
		counts := make(map[string]int, len(domain))
		for _, r := range records {
			counts[get(r.LLMClassification)]++
		}
		out := make([]ValueCount, 0, len(domain))
		for _, v := range domain {
			out = append(out, ValueCount{
				Value:   v,
				Count:   counts[v],
				Percent: percentOf(counts[v], len(records)),
			})
		}
		return out
	}

	stats.Sentiment = distribution(SentimentValues, func(v ClassificationVerdict) string { return v.OverallSentiment })
	stats.Understanding = distribution(RatingValues, func(v ClassificationVerdict) string { return v.BotUnderstanding })
	stats.Performance = distribution(RatingValues, func(v ClassificationVerdict) string { return v.BotPerformance })

	counts := make(map[string]int)
	var order []string
	occurrences := 0
	for _, r := range records {
		for _, c := range r.LLMClassification.Categories {
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c]++
			occurrences++
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 5 {
		order = order[:5]
	}
	stats.TotalCategoryOccurrences = occurrences
	for _, c := range order {
		stats.TopCategories = append(stats.TopCategories, CategoryCount{
			Category: c,
			Count:    counts[c],
			Percent:  percentOf(counts[c], occurrences),
		})
	}
	return stats
}

func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// RenderSummary writes the human-readable statistics block.
func RenderSummary(w io.Writer, stats SummaryStats) {
	fmt.Fprintln(w, "\nAnalysis Summary:")
	fmt.Fprintln(w, strings.Repeat("─", 50))

	fmt.Fprintln(w, "Sentiment Distribution:")
	for _, v := range stats.Sentiment {
		fmt.Fprintf(w, "  • %s: %d (%.1f%%)\n", capitalize(v.Value), v.Count, v.Percent)
	}

	fmt.Fprintln(w, "\nBot Understanding Distribution:")
	for _, v := range stats.Understanding {
		fmt.Fprintf(w, "  • %s: %d (%.1f%%)\n", capitalize(v.Value), v.Count, v.Percent)
	}

	fmt.Fprintln(w, "\nBot Performance Distribution:")
	for _, v := range stats.Performance {
		fmt.Fprintf(w, "  • %s: %d (%.1f%%)\n", capitalize(v.Value), v.Count, v.Percent)
	}

	fmt.Fprintln(w, "\nTop 5 Categories:")
	for _, c := range stats.TopCategories {
		fmt.Fprintf(w, "  • %s: %d (%.1f%%)\n", c.Category, c.Count, c.Percent)
	}
}

// capitalize upper-cases the first byte; domain values are ASCII.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
