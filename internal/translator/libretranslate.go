package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultLibreTranslateURL = "http://localhost:5000"
	DefaultTimeout           = 30 * time.Second
)

// LibreTranslateClient implements Translator using a LibreTranslate server
type LibreTranslateClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewLibreTranslateClient creates a new LibreTranslate client
func NewLibreTranslateClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *LibreTranslateClient {
	if baseURL == "" {
		baseURL = DefaultLibreTranslateURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LibreTranslateClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type detectRequest struct {
	Q      string `json:"q"`
	APIKey string `json:"api_key,omitempty"`
}

type detection struct {
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Detect returns the most confident language reported by /detect
func (c *LibreTranslateClient) Detect(ctx context.Context, text string) (string, error) {
	var detections []detection
	if err := c.post(ctx, "detect", "/detect", detectRequest{Q: text, APIKey: c.apiKey}, &detections); err != nil {
		return "", err
	}

	best := detection{Confidence: -1}
	for _, d := range detections {
		if d.Language != "" && d.Confidence > best.Confidence {
			best = d
		}
	}
	if best.Language == "" {
		return "", &Error{Op: "detect", Kind: KindEmpty}
	}

	c.logger.Debug("Language detected",
		zap.String("language", best.Language),
		zap.Float64("confidence", best.Confidence),
	)

	return NormalizeCode(best.Language), nil
}

// Translate translates text into targetLang with source auto-detection
func (c *LibreTranslateClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	req := translateRequest{
		Q:      text,
		Source: "auto",
		Target: targetLang,
		Format: "text",
		APIKey: c.apiKey,
	}

	var resp translateResponse
	if err := c.post(ctx, "translate", "/translate", req, &resp); err != nil {
		return "", err
	}
	if resp.TranslatedText == "" && strings.TrimSpace(text) != "" {
		return "", &Error{Op: "translate", Kind: KindEmpty}
	}

	return resp.TranslatedText, nil
}

func (c *LibreTranslateClient) post(ctx context.Context, op, path string, payload, out interface{}) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return &Error{Op: op, Kind: KindDecode, Cause: fmt.Errorf("encode request: %w", err)}
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Cause: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Cause: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("LibreTranslate request completed",
		zap.String("op", op),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{
			Op:         op,
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Cause:      errors.New(strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Kind: KindDecode, Cause: err}
	}

	return nil
}

var _ Translator = (*LibreTranslateClient)(nil)
