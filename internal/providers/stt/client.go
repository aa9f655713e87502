// Package stt connects to the speech-to-text diarization service and feeds
// finalized speaker-labeled segments into the session.
package stt

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sandevgo/cuebot/internal/config"
	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/pkg/log"
)

// SegmentHandler receives segments in arrival order. Reset is called when
// the upstream connection closes, which ends the session.
type SegmentHandler interface {
	HandleSegment(ctx context.Context, seg core.Segment)
	Reset(ctx context.Context)
}

// segmentFrame is the wire format of one finalized segment. Time is
// milliseconds on the diarizer's clock.
type segmentFrame struct {
	Speaker int    `json:"speaker"`
	Text    string `json:"text"`
	Time    int64  `json:"time"`
}

type Client struct {
	cfg     *config.STTConfig
	handler SegmentHandler

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewClient(cfg *config.STTConfig, handler SegmentHandler) *Client {
	return &Client{cfg: cfg, handler: handler}
}

// Start dials the diarization service and pumps segments until ctx is
// cancelled. A dropped connection resets the session and reconnects after a
// short delay.
func (c *Client) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Str("url", c.cfg.URL).Msg("starting stt stream")

	for {
		if err := c.runOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Warn().Err(err).Msg("stt stream closed, session ends")
			c.handler.Reset(ctx)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.cfg.ReconnectDelay):
		}
	}
}

func (c *Client) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) runOnce(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer func() {
		conn.Close()
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
	}()

	log.FromCtx(ctx).Info().Msg("stt stream connected, session begins")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}

		seg, err := parseFrame(data)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("skipping malformed stt frame")
			continue
		}

		c.handler.HandleSegment(ctx, seg)
	}
}

func parseFrame(data []byte) (core.Segment, error) {
	var frame segmentFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return core.Segment{}, fmt.Errorf("decode frame: %w", err)
	}
	if frame.Text == "" {
		return core.Segment{}, fmt.Errorf("frame has empty text")
	}
	if frame.Speaker < 0 {
		return core.Segment{}, fmt.Errorf("frame has negative speaker id %d", frame.Speaker)
	}
	return core.Segment{
		Speaker: frame.Speaker,
		Text:    frame.Text,
		Time:    time.UnixMilli(frame.Time),
	}, nil
}
