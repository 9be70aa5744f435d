// Package explain talks to an OpenAI-compatible chat-completions endpoint to
// produce one-sentence risk explanations for high-risk reviews. The boundary
// is strictly optional: callers fall back to a canned message on any failure.
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are an Identity Governance and Compliance Analyst.\n\n" +
	"Given a user's name and an entitlement with its risk tier, explain in ONE concise sentence:\n" +
	"1. Why this access is risky (if it is)\n" +
	"2. What action is recommended\n\n" +
	"Do NOT make final decisions.\n" +
	"Do NOT invent facts.\n" +
	"Use clear, non-technical language.\n" +
	"Return plain text only.\n"

// PrincipalContext describes the identity under review.
type PrincipalContext struct {
	ID   string `json:"principal_id"`
	Name string `json:"principal_name"`
}

// EntitlementContext describes the entitlement under review.
type EntitlementContext struct {
	ID       string `json:"entitlement_id"`
	Name     string `json:"entitlement_name"`
	RiskTier string `json:"risk_tier"`
}

// Explainer produces a short risk explanation for one review.
type Explainer interface {
	Explain(ctx context.Context, principal PrincipalContext, entitlement EntitlementContext) (string, error)
}

// Client is an Explainer backed by a chat-completions API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a Client. baseURL is the API root, e.g.
// https://api.openai.com/v1.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Explain implements Explainer.
func (c *Client) Explain(ctx context.Context, principal PrincipalContext, entitlement EntitlementContext) (string, error) {
	principalJSON, err := json.MarshalIndent(principal, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal principal context: %w", err)
	}
	entitlementJSON, err := json.MarshalIndent(entitlement, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entitlement context: %w", err)
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("User Context:\n%s\n\nEntitlement:\n%s\n", principalJSON, entitlementJSON)},
		},
		Temperature: 0,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call explanation api: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("explanation api returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode explanation response: %w", err)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", errors.New("empty explanation response")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
