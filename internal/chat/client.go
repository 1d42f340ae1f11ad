// Package chat is the client for the upstream chat-completion provider
// behind the Personal Listener page.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"serenity-api/internal/config"
)

var (
	// ErrNotConfigured means no API key is present; the endpoint stays
	// up but every turn fails with this.
	ErrNotConfigured = errors.New("chat: no API key configured")
	// ErrUpstream covers any non-success answer from the provider.
	ErrUpstream = errors.New("chat: upstream error")
)

// Turn is one side of the conversation, "user" or "assistant".
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const systemPreamble = "You are Serenity, a gentle listener for university students. " +
	"Respond with warmth in a few short sentences, never give medical advice, and " +
	"if the student mentions danger or self-harm, urge them to contact local " +
	"emergency services or a trusted person immediately."

// maxTurns bounds how much history is forwarded upstream.
const maxTurns = 10

type Client struct {
	cfg  config.ChatConfig
	http *http.Client
}

func New(cfg config.ChatConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string  `json:"model"`
	Messages    []Turn  `json:"messages"`
	Temperature float32 `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the recent turns to the provider and returns the single
// reply text. Only the last ten turns are forwarded.
func (c *Client) Generate(ctx context.Context, turns []Turn) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	body := chatRequest{
		Model:    c.cfg.Model,
		Messages: append([]Turn{{Role: "system", Content: systemPreamble}}, turns...),
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	slurp, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(slurp, &out); err != nil {
		return "", fmt.Errorf("%w: bad response body", ErrUpstream)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrUpstream)
	}

	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	if reply == "" {
		reply = "I'm here with you."
	}
	return reply, nil
}
