// Package stream tails live trade prints from the Polymarket CLOB market
// websocket channel. It complements the REST analysis path; nothing in the
// scan pipeline depends on it.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Default configuration values.
const (
	DefaultWSURL          = "wss://ws-subscriptions-clob.polymarket.com/ws/market"
	DefaultReconnectBase  = 1 * time.Second
	DefaultReconnectMax   = 60 * time.Second
	DefaultHandshakeLimit = 15 * time.Second
)

// TradePrint is a decoded last-trade event from the market channel.
type TradePrint struct {
	AssetID   string
	Market    string // conditionId of the market
	Side      string
	Price     float64
	Size      float64
	Timestamp int64 // Unix milliseconds
}

// Handler receives decoded trade prints. Called from the read loop; must not
// block for long.
type Handler func(TradePrint)

// Tape is a reconnecting websocket subscriber for a fixed set of asset ids.
type Tape struct {
	url      string
	assetIDs []string
	handler  Handler
	logger   *zap.Logger

	reconnectBase time.Duration
	reconnectMax  time.Duration
}

// Options for creating a Tape.
type Options struct {
	URL      string // defaults to DefaultWSURL
	AssetIDs []string
	Handler  Handler // required
	Logger   *zap.Logger

	ReconnectBase time.Duration
	ReconnectMax  time.Duration
}

// New creates a Tape.
func New(opts Options) (*Tape, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("stream: handler is required")
	}
	if len(opts.AssetIDs) == 0 {
		return nil, fmt.Errorf("stream: at least one asset id is required")
	}

	t := &Tape{
		url:           opts.URL,
		assetIDs:      opts.AssetIDs,
		handler:       opts.Handler,
		logger:        opts.Logger,
		reconnectBase: opts.ReconnectBase,
		reconnectMax:  opts.ReconnectMax,
	}
	if t.url == "" {
		t.url = DefaultWSURL
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	if t.reconnectBase == 0 {
		t.reconnectBase = DefaultReconnectBase
	}
	if t.reconnectMax == 0 {
		t.reconnectMax = DefaultReconnectMax
	}
	return t, nil
}

// subscribeRequest is the market-channel subscription message.
type subscribeRequest struct {
	AssetIDs []string `json:"assets_ids"`
	Type     string   `json:"type"`
}

// wsEvent is the portion of a market-channel message this package consumes.
// Numeric fields arrive as strings.
type wsEvent struct {
	EventType string `json:"event_type"`
	AssetID   string `json:"asset_id"`
	Market    string `json:"market"`
	Side      string `json:"side"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Timestamp string `json:"timestamp"`
}

// Run connects and delivers trade prints until ctx is cancelled, redialing
// with capped exponential backoff after connection loss.
func (t *Tape) Run(ctx context.Context) error {
	backoff := t.reconnectBase

	for {
		err := t.runOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		t.logger.Warn("tape disconnected", zap.Error(err), zap.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > t.reconnectMax {
			backoff = t.reconnectMax
		}
	}
}

// runOnce performs a single connect/subscribe/read cycle.
func (t *Tape) runOnce(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: DefaultHandshakeLimit}
	conn, _, err := dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.url, err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(subscribeRequest{AssetIDs: t.assetIDs, Type: "market"}); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	t.logger.Info("subscribed to market channel",
		zap.Int("assets", len(t.assetIDs)))

	// Unblock ReadMessage when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		t.dispatch(msg)
	}
}

// dispatch decodes a raw message and delivers any trade prints it carries.
// The channel sends both single events and arrays of events; anything that
// fails to decode is dropped.
func (t *Tape) dispatch(msg []byte) {
	var events []wsEvent
	if err := json.Unmarshal(msg, &events); err != nil {
		var single wsEvent
		if err := json.Unmarshal(msg, &single); err != nil {
			t.logger.Debug("undecodable message", zap.ByteString("payload", msg))
			return
		}
		events = []wsEvent{single}
	}

	for _, ev := range events {
		if ev.EventType != "last_trade_price" {
			continue
		}
		t.handler(decodePrint(ev))
	}
}

func decodePrint(ev wsEvent) TradePrint {
	price, _ := strconv.ParseFloat(ev.Price, 64)
	size, _ := strconv.ParseFloat(ev.Size, 64)
	ts, _ := strconv.ParseInt(ev.Timestamp, 10, 64)

	return TradePrint{
		AssetID:   ev.AssetID,
		Market:    ev.Market,
		Side:      ev.Side,
		Price:     price,
		Size:      size,
		Timestamp: ts,
	}
}
