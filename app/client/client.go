package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/abacatepay-go/app/factory"
)

const DefaultBaseURL = "https://api.abacatepay.com/v1"

type Config struct {
	BaseURL     string
	Token       string
	HTTPTimeout time.Duration
	HTTPClient  *http.Client
	Logger      logrus.FieldLogger
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  logrus.FieldLogger
}

func New(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, ErrMissingToken
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = factory.NewModuleLogger("abacatepay-client")
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    httpClient,
		logger:  logger,
	}, nil
}

func (c *Client) Billing() *BillingClient {
	return &BillingClient{client: c}
}

func (c *Client) Customers() *CustomerClient {
	return &CustomerClient{client: c}
}

func (c *Client) PixQrCodes() *PixQrCodeClient {
	return &PixQrCodeClient{client: c}
}

// do sends the request and returns the decoded "data" member of the response envelope.
// Numbers are decoded as json.Number so amounts keep integer precision.
func (c *Client) do(ctx context.Context, method, resource, action string, payload interface{}) (interface{}, error) {
	path := "/" + resource + "/" + action

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("method", method).WithField("path", path).Warn("abacatepay_request_failed")
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	entry := c.logger.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
		entry.WithError(apiErr).Warn("abacatepay_request_rejected")
		return nil, apiErr
	}
	entry.Debug("abacatepay_request")

	var envelope struct {
		Data  interface{} `json:"data"`
		Error interface{} `json:"error"`
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %w", ErrRequestFailed, err)
	}
	if envelope.Error != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: stringify(envelope.Error)}
	}

	return envelope.Data, nil
}

// errorMessage prefers the "message" member of an error body, then "error", then the raw body.
func errorMessage(raw []byte) string {
	var payload map[string]interface{}
	if json.Unmarshal(raw, &payload) == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := payload[key]; ok && v != nil {
				if s := stringify(v); s != "" {
					return s
				}
			}
		}
	}
	return strings.TrimSpace(string(raw))
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]interface{}:
		if msg, ok := t["message"].(string); ok {
			return strings.TrimSpace(msg)
		}
	}
	encoded, _ := json.Marshal(v)
	return string(encoded)
}
