package analysis

import (
	"strings"
	"testing"
)

const validCorpusLine = `{"messages":[` +
	`{"role":"system","content":"Sen bir konuşma analisti olarak görev yapıyorsun."},` +
	`{"role":"user","content":"User: salon arıyorum\n\nBot: Size yardımcı olayım"},` +
	`{"role":"assistant","content":"{\"overall_sentiment\":\"positive\",\"bot_understanding\":\"good\",\"bot_performance\":\"good\",\"bot_answered\":true}"}]}`

func TestCheckCorpusLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		want string
	}{
		{"valid", validCorpusLine, ""},
		{"empty", "   ", "empty line"},
		{"not json", "{oops", "invalid JSON"},
		{"no messages key", `{"other":1}`, `missing "messages" field`},
		{"messages not a list", `{"messages":"nope"}`, `"messages" is not a list of messages`},
		{
			"two messages",
			`{"messages":[{"role":"system","content":"a"},{"role":"user","content":"b"}]}`,
			"expected 3 messages, got 2",
		},
		{
			"wrong role order",
			`{"messages":[{"role":"user","content":"a"},{"role":"system","content":"b"},{"role":"assistant","content":"{}"}]}`,
			"expected roles [system user assistant], got [user system assistant]",
		},
		{
			"assistant content empty",
			`{"messages":[{"role":"system","content":"a"},{"role":"user","content":"b"},{"role":"assistant","content":""}]}`,
			"assistant message missing content",
		},
		{
			"assistant content not json",
			`{"messages":[{"role":"system","content":"a"},{"role":"user","content":"b"},{"role":"assistant","content":"not json"}]}`,
			"assistant content is not valid JSON",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CheckCorpusLine(tc.line); got != tc.want {
				t.Fatalf("CheckCorpusLine=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckCorpusLine_PayloadMissingField(t *testing.T) {
	t.Parallel()

	line := `{"messages":[` +
		`{"role":"system","content":"a"},` +
		`{"role":"user","content":"b"},` +
		`{"role":"assistant","content":"{\"overall_sentiment\":\"positive\"}"}]}`
	got := CheckCorpusLine(line)
	if !strings.HasPrefix(got, "assistant payload incomplete: ") {
		t.Fatalf("CheckCorpusLine=%q, want an incomplete-payload diagnostic", got)
	}
}

func TestValidateCorpus(t *testing.T) {
	t.Parallel()

	corpus := strings.Join([]string{
		validCorpusLine,
		"",
		"{broken",
		validCorpusLine,
	}, "\n")

	report, err := ValidateCorpus(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("ValidateCorpus: %v", err)
	}
	if report.TotalLines != 4 || report.ValidLines != 2 {
		t.Fatalf("report=%+v, want 2/4 valid", report)
	}
	if report.Valid() {
		t.Fatalf("report.Valid()=true with failing lines")
	}
	if len(report.Diagnostics) != 2 {
		t.Fatalf("diagnostics=%+v", report.Diagnostics)
	}
	if report.Diagnostics[0].Line != 2 || report.Diagnostics[0].Reason != "empty line" {
		t.Fatalf("diagnostics[0]=%+v", report.Diagnostics[0])
	}
	if report.Diagnostics[1].Line != 3 || report.Diagnostics[1].Reason != "invalid JSON" {
		t.Fatalf("diagnostics[1]=%+v", report.Diagnostics[1])
	}
}

func TestValidateCorpus_AllValid(t *testing.T) {
	t.Parallel()

	report, err := ValidateCorpus(strings.NewReader(validCorpusLine + "\n" + validCorpusLine))
	if err != nil {
		t.Fatalf("ValidateCorpus: %v", err)
	}
	if !report.Valid() || report.TotalLines != 2 {
		t.Fatalf("report=%+v", report)
	}
}
