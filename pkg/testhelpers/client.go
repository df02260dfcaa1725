package testhelpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a small JSON client for the chat server API, used by tests that
// run against a listening server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client with a 10s timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// StatusError is returned for responses with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: %d %s: %s", e.StatusCode, e.Type, e.Message)
}

// CreateContact posts a contact and returns its id.
func (c *Client) CreateContact(name, email string) (string, error) {
	var out map[string]any
	if err := c.Do(http.MethodPost, "/v1/contacts", map[string]string{"name": name, "email": email}, &out); err != nil {
		return "", err
	}
	id, _ := out["id"].(string)
	return id, nil
}

// SendMessage sends a private message and returns the message body.
func (c *Client) SendMessage(from, to, content string) (map[string]any, error) {
	var out map[string]any
	err := c.Do(http.MethodPost, "/v1/messages", map[string]string{"from": from, "to": to, "content": content}, &out)
	return out, err
}

// ChannelMessages lists the messages of a channel, newest first.
func (c *Client) ChannelMessages(channelID string) ([]map[string]any, error) {
	var out struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.Do(http.MethodGet, "/v1/channels/"+channelID+"/messages", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Do sends body as JSON and decodes the response into out when out is non-nil.
func (c *Client) Do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var payload struct {
			Error struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(data, &payload)
		return &StatusError{StatusCode: resp.StatusCode, Type: payload.Error.Type, Message: payload.Error.Message}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
