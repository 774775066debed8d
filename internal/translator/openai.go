package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIConfig holds configuration for the OpenAI engine
type OpenAIConfig struct {
	APIKey  string
	Model   string // default: gpt-4o-mini
	BaseURL string // optional
	Timeout time.Duration
}

// OpenAIClient implements Translator on top of chat completions
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// languageNames are used in prompts; unknown codes are passed as is
var languageNames = map[string]string{
	"uz": "Uzbek (Latin script)",
	"ar": "Arabic",
	"tr": "Turkish",
}

// NewOpenAIClient creates a new OpenAI translation client
func NewOpenAIClient(cfg OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger,
	}
}

const detectPrompt = `Identify the language of the user's text.
Return a JSON object {"language": "<ISO 639-1 code>"} and nothing else.`

const translatePrompt = `You are a professional translator. Translate the user's text into %s.
Keep the meaning, tone and line breaks. Do not add explanations.
Return a JSON object {"translation": "<translated text>"} and nothing else.`

// Detect asks the model for the ISO 639-1 code of text
func (c *OpenAIClient) Detect(ctx context.Context, text string) (string, error) {
	var out struct {
		Language string `json:"language"`
	}
	if err := c.complete(ctx, "detect", detectPrompt, text, &out); err != nil {
		return "", err
	}

	code := NormalizeCode(out.Language)
	if code == "" {
		return "", &Error{Op: "detect", Kind: KindEmpty}
	}
	return code, nil
}

// Translate asks the model to translate text into targetLang
func (c *OpenAIClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	name, ok := languageNames[targetLang]
	if !ok {
		name = targetLang
	}

	var out struct {
		Translation string `json:"translation"`
	}
	if err := c.complete(ctx, "translate", fmt.Sprintf(translatePrompt, name), text, &out); err != nil {
		return "", err
	}
	if out.Translation == "" && strings.TrimSpace(text) != "" {
		return "", &Error{Op: "translate", Kind: KindEmpty}
	}
	return out.Translation, nil
}

func (c *OpenAIClient) complete(ctx context.Context, op, system, user string, out interface{}) error {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return classifyOpenAIError(op, err)
	}

	if len(resp.Choices) == 0 {
		return &Error{Op: op, Kind: KindEmpty}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		c.logger.Debug("Unexpected completion content", zap.String("op", op), zap.String("content", content))
		return &Error{Op: op, Kind: KindDecode, Cause: err}
	}
	return nil
}

func classifyOpenAIError(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Op: op, Kind: KindStatus, StatusCode: apiErr.HTTPStatusCode, Cause: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{Op: op, Kind: KindStatus, StatusCode: reqErr.HTTPStatusCode, Cause: err}
	}

	return &Error{Op: op, Kind: KindTransport, Cause: err}
}

var _ Translator = (*OpenAIClient)(nil)
