package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lawchat-backend/utils"
)

const (
	// FallbackAnswer replaces the assistant reply whenever the Dify call
	// fails. Callers can only tell a degraded reply apart via the
	// Fallback flag.
	FallbackAnswer = "Sorry, the system is having trouble. Please try again later."

	// emptyAnswer is substituted when Dify answers with an empty string.
	emptyAnswer = "Sorry, I cannot answer this question."

	requestTimeout = 30 * time.Second
	probeMessage   = "Hello"
	difyUser       = "user-123"
)

// Response is the normalized result of one exchange with Dify.
type Response struct {
	Answer         string
	ConversationID string
	MessageID      string
	Fallback       bool
}

type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: utils.NewHTTPClient(
			utils.WithTimeout(requestTimeout),
		),
	}
}

type chatRequest struct {
	Inputs         map[string]any `json:"inputs"`
	Query          string         `json:"query"`
	ResponseMode   string         `json:"response_mode"`
	ConversationID string         `json:"conversation_id"`
	User           string         `json:"user"`
}

type chatResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	Message        string `json:"message"`
}

// Send issues a single blocking chat request. It never returns an error:
// any transport or API failure degrades to the fixed apology answer so the
// chat flow always produces some assistant reply.
func (c *Client) Send(ctx context.Context, query, conversationID string) *Response {
	body, err := json.Marshal(chatRequest{
		Inputs:         map[string]any{},
		Query:          query,
		ResponseMode:   "blocking",
		ConversationID: conversationID,
		User:           difyUser,
	})
	if err != nil {
		slog.Error("Failed to marshal Dify request", "err", err)
		return c.fallback(conversationID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		slog.Error("Failed to build Dify request", "err", err)
		return c.fallback(conversationID)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Dify API request failed", "err", err)
		return c.fallback(conversationID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Error("Dify API returned non-2xx status",
			"status", resp.StatusCode,
			"body", string(snippet),
		)
		return c.fallback(conversationID)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		slog.Error("Failed to decode Dify response", "err", err)
		return c.fallback(conversationID)
	}

	answer := decoded.Answer
	if answer == "" {
		answer = emptyAnswer
	}
	convID := decoded.ConversationID
	if convID == "" {
		convID = conversationID
	}

	return &Response{
		Answer:         answer,
		ConversationID: convID,
		MessageID:      decoded.MessageID,
	}
}

func (c *Client) fallback(conversationID string) *Response {
	return &Response{
		Answer:         FallbackAnswer,
		ConversationID: conversationID,
		Fallback:       true,
	}
}

// TestConnection sends a canned probe message. Connected means the probe
// produced a real answer rather than the fallback.
func (c *Client) TestConnection(ctx context.Context) bool {
	return !c.Send(ctx, probeMessage, "").Fallback
}
