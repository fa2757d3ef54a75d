package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/salienza/salienza/model"
)

const defaultGoogleBaseURL = "https://language.googleapis.com/v1/documents:analyzeEntities"

// GoogleClient calls the Google Cloud Natural Language analyzeEntities
// endpoint. Rate limited and failed transport calls are retried with a
// linear backoff.
type GoogleClient struct {
	BaseURL string
	APIKey  string

	MaxRetries int
	RetryDelay time.Duration

	HTTPClient *http.Client
}

// NewGoogleClient creates a client with the default endpoint, three
// attempts and a one second base delay.
func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		BaseURL:    defaultGoogleBaseURL,
		APIKey:     apiKey,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}
}

type analyzeDocument struct {
	Content  string `json:"content"`
	Type     string `json:"type"`
	Language string `json:"language,omitempty"`
}

type analyzeRequest struct {
	Document     analyzeDocument `json:"document"`
	EncodingType string          `json:"encodingType"`
}

type analyzeResponse struct {
	Entities []model.RawEntity `json:"entities"`
	Language string            `json:"language"`
	Error    *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// AnalyzeEntities sends text for entity extraction. language "auto"
// leaves detection to the server. The input must already have passed
// ValidateInput.
func (c *GoogleClient) AnalyzeEntities(ctx context.Context, text string, language string) (*model.ExtractionResponse, error) {
	if err := ValidateInput(text); err != nil {
		return nil, err
	}

	document := analyzeDocument{Content: text, Type: "PLAIN_TEXT"}
	if language != "" && language != "auto" {
		document.Language = language
	}
	body, err := json.Marshal(analyzeRequest{Document: document, EncodingType: "UTF8"})
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= c.maxRetries(); attempt++ {
		payload, apiErr := c.send(ctx, body)
		if apiErr == nil {
			responseLanguage := payload.Language
			if responseLanguage == "" {
				responseLanguage = "unknown"
			}
			return &model.ExtractionResponse{
				Entities: payload.Entities,
				Language: responseLanguage,
				Text:     text,
			}, nil
		}

		// Rate limits and transport failures are retried, every other
		// API error is final.
		retryable := apiErr.Status == http.StatusTooManyRequests || apiErr.Code == ErrorCodeNetwork
		if !retryable || attempt == c.maxRetries() {
			if apiErr.Code == ErrorCodeNetwork {
				return nil, &APIError{Status: 0, Code: ErrorCodeNetwork, Message: "network error after retries"}
			}
			return nil, apiErr
		}

		if err := c.delay(ctx, attempt); err != nil {
			return nil, err
		}
	}

	return nil, &APIError{Status: 0, Code: ErrorCodeNetwork, Message: "network error after retries"}
}

func (c *GoogleClient) send(ctx context.Context, body []byte) (*analyzeResponse, *APIError) {
	url := c.BaseURL
	if c.APIKey != "" {
		url = fmt.Sprintf("%v?key=%v", c.BaseURL, c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Status: 0, Code: ErrorCodeNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &APIError{Status: 0, Code: ErrorCodeNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	var payload analyzeResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Code:    "UNKNOWN_ERROR",
			Message: fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
		if decodeErr == nil && payload.Error != nil {
			if payload.Error.Status != "" {
				apiErr.Code = payload.Error.Status
			}
			if payload.Error.Message != "" {
				apiErr.Message = payload.Error.Message
			}
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, &APIError{Status: 0, Code: ErrorCodeNetwork, Message: decodeErr.Error()}
	}
	return &payload, nil
}

// delay waits attempt times the base delay, honoring the context.
func (c *GoogleClient) delay(ctx context.Context, attempt int) error {
	baseDelay := c.RetryDelay
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	timer := time.NewTimer(baseDelay * time.Duration(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *GoogleClient) maxRetries() int {
	if c.MaxRetries > 0 {
		return c.MaxRetries
	}
	return 3
}

func (c *GoogleClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}
