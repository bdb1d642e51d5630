// Package provider wraps the OpenAI Responses API behind the one call shape
// this pipeline needs: instructions plus task input under a strict JSON
// schema, decoded straight into the caller's type.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/occasionlabs/convo-insights/analysis/fileutils"
)

// Client issues schema-constrained requests against one model.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a Client. The API key must already be resolved; credential
// lookup is the caller's concern.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("provider: missing API key")
	}
	if model == "" {
		return nil, errors.New("provider: missing model")
	}
	api := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{api: &api, model: model}, nil
}

// Request issues exactly one structured-output request and decodes the
// response into out. There is no retry here: a failed item is skipped by
// the batch loop, and re-running the tool is the only retry in the system.
func (c *Client) Request(ctx context.Context, schemaName, instructions, input string, schema map[string]interface{}, out any) error {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        schemaName,
			Schema:      schema,
			Strict:      openai.Bool(true),
			Description: openai.String("Structured classification JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := c.api.Responses.New(ctx, params)
	if err != nil {
		return err
	}
	if err := fileutils.DecodeModelJSON(resp.OutputText(), out); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

// ErrorClass buckets a request error for logging: "rate_limit",
// "server_error", or "other". Classification only — nothing in this
// pipeline retries on any of these.
func ErrorClass(err error) string {
	switch {
	case isRateLimitError(err):
		return "rate_limit"
	case isServerError(err):
		return "server_error"
	default:
		return "other"
	}
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error")
}
