package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jot/pkg/errors"
)

const (
	model        = "grok-beta"
	maxTokens    = 200
	systemPrompt = "You are a concise assistant. Produce a 2-3 sentence summary of the text the user provides."
)

// Client proxies text to an external chat-completion API. Each call is
// single-shot: no retries, no local timeout, cancellable through ctx.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a summarization client for the given endpoint.
// An empty apiKey is allowed here; Summarize reports it when invoked.
func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
	Stream    bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize sends text upstream and returns the resulting summary.
// Validation and credential checks happen before any network activity.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	validator := errors.NewValidator()
	if result := validator.ValidateSummaryText(text); !result.IsValid {
		return "", result.GetFirstError()
	}

	if c.apiKey == "" {
		return "", errors.ErrAPIKeyMissing
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: strings.TrimSpace(text)},
		},
		MaxTokens: maxTokens,
		Stream:    false,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTypeUpstream, "REQUEST_ENCODE_FAILED",
			"failed to encode summarization request").
			WithUserMessage("Failed to generate summary")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTypeUpstream, "REQUEST_BUILD_FAILED",
			"failed to build summarization request").
			WithUserMessage("Failed to generate summary")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTypeUpstream, "UPSTREAM_UNREACHABLE",
			"summarization request failed").
			WithUserMessage("Failed to generate summary")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyUpstream(resp)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, errors.ErrTypeUpstream, "RESPONSE_DECODE_FAILED",
			"failed to decode summarization response").
			WithUserMessage("Failed to generate summary")
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New(errors.ErrTypeUpstream, "RESPONSE_EMPTY",
			"summarization response contained no choices").
			WithUserMessage("Failed to generate summary")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// classifyUpstream maps a non-200 upstream response onto the error
// taxonomy by HTTP status code. The response body is captured as detail.
func classifyUpstream(resp *http.Response) *errors.AppError {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	cause := fmt.Errorf("upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrap(cause, errors.ErrTypeUpstream, "UPSTREAM_AUTH",
			"summarization API rejected credentials").
			WithUserMessage("Invalid API key").
			WithStatus(http.StatusUnauthorized)
	case http.StatusTooManyRequests:
		return errors.Wrap(cause, errors.ErrTypeUpstream, "UPSTREAM_RATE_LIMITED",
			"summarization API rate limit exceeded").
			WithUserMessage("Rate limit exceeded, please try again later").
			WithStatus(http.StatusTooManyRequests)
	default:
		return errors.Wrap(cause, errors.ErrTypeUpstream, "UPSTREAM_FAILED",
			"summarization API request failed").
			WithUserMessage("Failed to generate summary")
	}
}
