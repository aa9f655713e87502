// Package recognition calls the browser-automation service that runs a
// reverse image search for the current conversation partner. The trigger is
// fire-and-forget from the session's point of view.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/cuebot/internal/config"
	"github.com/sandevgo/cuebot/pkg/log"
	"github.com/sandevgo/cuebot/pkg/retry"
)

type Client struct {
	client    *http.Client
	baseURL   string
	imagePath string
	waitSecs  int
	retrier   *retry.Retrier
}

type uploadRequest struct {
	ImagePath string `json:"image_path"`
	Headless  bool   `json:"headless"`
	WaitTime  int    `json:"wait_time"`
}

type uploadResponse struct {
	Success   bool     `json:"success"`
	ImageURLs []string `json:"image_urls"`
	Count     int      `json:"count"`
	Message   string   `json:"message"`
	SearchURL string   `json:"search_url"`
}

func NewClient(cfg *config.RecognitionConfig) *Client {
	return &Client{
		client: &http.Client{
			// The automation service drives a real browser; uploads are slow.
			Timeout: time.Duration(cfg.WaitSeconds+30) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		imagePath: cfg.ImagePath,
		waitSecs:  cfg.WaitSeconds,
		retrier:   retry.NewDefaultRetrier(),
	}
}

// Trigger starts one lookup round. It retries transient upload failures a
// couple of times and reports the final outcome; the caller only logs it.
func (c *Client) Trigger(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	var result uploadResponse
	err := c.retrier.Do(ctx, func() error {
		var opErr error
		result, opErr = c.uploadImage(ctx)
		return opErr
	})
	if err != nil {
		return fmt.Errorf("recognition upload: %w", err)
	}

	logger.Info().
		Int("count", result.Count).
		Str("search_url", result.SearchURL).
		Msg("recognition lookup completed")
	return nil
}

func (c *Client) uploadImage(ctx context.Context) (uploadResponse, error) {
	payload := uploadRequest{
		ImagePath: c.imagePath,
		Headless:  true,
		WaitTime:  c.waitSecs,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return uploadResponse{}, fmt.Errorf("marshal: %w", err)
	}

	url := c.baseURL + "/api/v1/automation/upload-image"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return uploadResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return uploadResponse{}, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return uploadResponse{}, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return uploadResponse{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var result uploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return uploadResponse{}, fmt.Errorf("decode: %w", err)
	}
	if !result.Success {
		return uploadResponse{}, fmt.Errorf("lookup did not succeed: %s", result.Message)
	}
	return result, nil
}
