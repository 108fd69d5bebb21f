package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIOptions configures an OpenAIGenerator
type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     hclog.Logger
}

// OpenAIGenerator requests usernames from any OpenAI-compatible chat
// completions endpoint using a strict JSON schema response format.
type OpenAIGenerator struct {
	client openai.Client
	model  string
	apiKey string
	logger hclog.Logger
}

// NewOpenAIGenerator builds a generator. A missing API key is logged and
// allowed; every Generate call then fails.
func NewOpenAIGenerator(opts OpenAIOptions) (*OpenAIGenerator, error) {
	if opts.Model == "" {
		return nil, errors.New("llm model is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("generator")

	if opts.APIKey == "" {
		logger.Error("API key not set; generation requests will fail",
			"hint", "set USERNAMER_API_KEY, GEMINI_API_KEY or API_KEY")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &OpenAIGenerator{
		client: openai.NewClient(reqOpts...),
		model:  opts.Model,
		apiKey: opts.APIKey,
		logger: logger,
	}, nil
}

// Generate makes one chat completion request. Any failure, including a
// panic inside the SDK, is logged and reported as ErrGenerationFailed.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			names, err = nil, g.fail(req, fmt.Errorf("panic: %v", r))
		}
	}()

	if g.apiKey == "" {
		return nil, g.fail(req, ErrMissingAPIKey)
	}

	resp, err := g.client.Chat.Completions.New(ctx, g.params(req))
	if err != nil {
		return nil, g.fail(req, err)
	}
	if len(resp.Choices) == 0 {
		return nil, g.fail(req, errors.New("empty choices"))
	}

	names, err = ParseUsernames(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, g.fail(req, err)
	}

	g.logger.Debug("generated usernames", "seed", req.SeedWord, "category", req.Category, "count", len(names))
	return names, nil
}

func (g *OpenAIGenerator) params(req Request) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(req)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        SchemaName,
					Description: openai.String("A list of candidate usernames"),
					Schema:      ResponseSchema(),
					Strict:      openai.Bool(true),
				},
			},
		},
	}
}

func (g *OpenAIGenerator) fail(req Request, cause error) error {
	g.logger.Error("error generating usernames",
		"seed", req.SeedWord,
		"category", req.Category,
		"position", req.WordPosition,
		"error", cause)
	return ErrGenerationFailed
}
