package header_mapping_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"

	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/internal/config"
)

// ----- DOMAIN TYPES -----

type CellMapping struct {
	Key  string `json:"key" jsonschema_description:"Field key in snake_case, e.g. artikelnaam"`
	Cell string `json:"cell" jsonschema_description:"Sheet qualified cell reference, e.g. Sheet1!B12"`
}

type CellMappingResponse struct {
	Mappings []CellMapping `json:"mappings" jsonschema_description:"Fields found in the template with the empty cell that should hold the value"`
}

// ----- JSON SCHEMA (Structured Outputs) -----

func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var CellMappingResponseSchema = GenerateSchema[CellMappingResponse]()

var schemaParam = openai.ResponseFormatJSONSchemaJSONSchemaParam{
	Name:        "cell_mapping",
	Description: openai.String("Template fields to cell references"),
	Schema:      CellMappingResponseSchema,
	Strict:      openai.Bool(true),
}

// ----- SERVICE -----

// HeaderMappingService is the fallback inference backend. The structured
// answer is rendered back into a flat JSON object.
type HeaderMappingService struct {
	openaiClient *openai.Client
	model        string
	ctxTimeout   time.Duration
}

func New(openaiClient *openai.Client, cfg *config.Config) *HeaderMappingService {
	return &HeaderMappingService{
		openaiClient: openaiClient,
		model:        cfg.Clients.OpenAI.Model,
		ctxTimeout:   cfg.Clients.OpenAI.Timeout,
	}
}

func (s *HeaderMappingService) Name() string {
	return "openai"
}

func (s *HeaderMappingService) Configured(context.Context) bool {
	return s.openaiClient != nil
}

func (s *HeaderMappingService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.openaiClient == nil {
		return "", errs.Validation("OpenAI not configured.")
	}

	system := "You map spreadsheet templates to field keys. Return ONLY the JSON required by the schema."

	if s.ctxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.ctxTimeout)
		defer cancel()
	}

	chat, err := s.openaiClient.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
		Seed:  openai.Int(42),
		Model: openai.ChatModel(s.model),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", errs.Upstream("OpenAI request failed.", apiErr.StatusCode, apiErr.Error())
		}
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	return Flatten(chat.Choices[0].Message.Content)
}

// Flatten turns the structured answer into {"key":"Sheet!A1",...}. Text that
// is not the structured shape passes through for the lenient parser.
func Flatten(content string) (string, error) {
	var response CellMappingResponse
	if err := json.Unmarshal([]byte(content), &response); err != nil || response.Mappings == nil {
		return content, nil
	}

	var b strings.Builder
	b.WriteByte('{')
	written := 0
	for _, m := range response.Mappings {
		key := strings.TrimSpace(m.Key)
		if key == "" {
			continue
		}
		k, err := json.Marshal(key)
		if err != nil {
			return "", err
		}
		v, err := json.Marshal(strings.TrimSpace(m.Cell))
		if err != nil {
			return "", err
		}
		if written > 0 {
			b.WriteByte(',')
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
		written++
	}
	b.WriteByte('}')
	return b.String(), nil
}
