package analysis

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// expectedRoles is the fixed role order of a fine-tuning example.
var expectedRoles = []string{"system", "user", "assistant"}

// assistantPayloadSchema pins the minimum shape of the JSON embedded in the
// assistant turn of every fine-tuning example.
const assistantPayloadSchema = `{
  "type": "object",
  "required": ["overall_sentiment", "bot_understanding", "bot_performance", "bot_answered"]
}`

var assistantPayload = jsonschema.MustCompileString("assistant_payload.json", assistantPayloadSchema)

// LineDiagnostic is one failed corpus line with its reason.
type LineDiagnostic struct {
	Line   int // 1-based
	Reason string
}

// CorpusReport summarizes a corpus validation pass.
type CorpusReport struct {
	ValidLines  int
	TotalLines  int
	Diagnostics []LineDiagnostic
}

// Valid reports whether every line of the corpus checked out.
func (r CorpusReport) Valid() bool { return r.ValidLines == r.TotalLines }

type corpusMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CheckCorpusLine validates one JSONL line against the fixed 3-message
// fine-tuning shape. An empty return means the line is valid; otherwise the
// specific reason the line failed.
func CheckCorpusLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return "empty line"
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return "invalid JSON"
	}

	rawMessages, ok := obj["messages"]
	if !ok {
		return `missing "messages" field`
	}
	var messages []corpusMessage
	if err := json.Unmarshal(rawMessages, &messages); err != nil {
		return `"messages" is not a list of messages`
	}
	if len(messages) != 3 {
		return fmt.Sprintf("expected 3 messages, got %d", len(messages))
	}

	for i, want := range expectedRoles {
		if messages[i].Role != want {
			roles := make([]string, len(messages))
			for j, m := range messages {
				roles[j] = m.Role
			}
			return fmt.Sprintf("expected roles %v, got %v", expectedRoles, roles)
		}
	}

	assistant := messages[2]
	if assistant.Content == "" {
		return "assistant message missing content"
	}
	var payload interface{}
	if err := json.Unmarshal([]byte(assistant.Content), &payload); err != nil {
		return "assistant content is not valid JSON"
	}
	if err := assistantPayload.Validate(payload); err != nil {
		return "assistant payload incomplete: " + schemaFailure(err)
	}
	return ""
}

// schemaFailure flattens a jsonschema validation error to its most specific
// cause message.
func schemaFailure(err error) string {
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		leaf := ve
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		return leaf.Message
	}
	return err.Error()
}

// ValidateCorpus checks every line of a JSONL fine-tuning corpus. It never
// stops early: the whole input is read and the report carries one
// diagnostic per failing line.
func ValidateCorpus(r io.Reader) (CorpusReport, error) {
	var report CorpusReport
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		report.TotalLines++
		if reason := CheckCorpusLine(scanner.Text()); reason != "" {
			report.Diagnostics = append(report.Diagnostics, LineDiagnostic{
				Line:   report.TotalLines,
				Reason: reason,
			})
			continue
		}
		report.ValidLines++
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("read corpus: %w", err)
	}
	return report, nil
}
