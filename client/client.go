package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lawchat-backend/model"
	"lawchat-backend/utils"
)

const (
	DefaultBaseURL = "http://localhost:3001"

	requestTimeout = 30 * time.Second
)

// Client is a typed client for the chat backend's REST surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: utils.NewHTTPClient(
			utils.WithTimeout(requestTimeout),
		),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// ChatResult mirrors the /api/chat response payload.
type ChatResult struct {
	UserMessage    model.Message `json:"userMessage"`
	AIMessage      model.Message `json:"aiMessage"`
	Response       string        `json:"response"`
	SessionID      string        `json:"sessionId"`
	ConversationID string        `json:"conversationId"`
	Fallback       bool          `json:"fallback"`
}

type ChatTestResult struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

func (c *Client) ListSessions(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := c.do(ctx, http.MethodGet, "/api/sessions", nil, &sessions)
	return sessions, err
}

func (c *Client) CreateSession(ctx context.Context, title string) (*model.Session, error) {
	body := map[string]string{}
	if title != "" {
		body["title"] = title
	}
	var session model.Session
	if err := c.do(ctx, http.MethodPost, "/api/sessions", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := c.do(ctx, http.MethodGet, "/api/sessions/"+id, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, fields map[string]any) (*model.Session, error) {
	var session model.Session
	if err := c.do(ctx, http.MethodPut, "/api/sessions/"+id, fields, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/sessions/"+id, nil, nil)
}

func (c *Client) SessionMessages(ctx context.Context, id string) ([]model.Message, error) {
	var messages []model.Message
	err := c.do(ctx, http.MethodGet, "/api/sessions/"+id+"/messages", nil, &messages)
	return messages, err
}

func (c *Client) SendChat(ctx context.Context, message, sessionID string) (*ChatResult, error) {
	body := map[string]string{
		"message":   message,
		"sessionId": sessionID,
	}
	var result ChatResult
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) TestConnection(ctx context.Context) (*ChatTestResult, error) {
	var result ChatTestResult
	if err := c.do(ctx, http.MethodPost, "/api/chat/test", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, err)
	}
	if !env.Success {
		if env.Message != "" {
			return fmt.Errorf("%s: %s", env.Error, env.Message)
		}
		return fmt.Errorf("%s", env.Error)
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
