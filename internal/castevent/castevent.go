// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package castevent carries cast deletion events from the cast service to the
movie service over Redis pub/sub.

The payload is the decimal id of the deleted cast. Delivery is best effort:
a lost event only means a dangling reference goes unreported, the movie
data itself is never changed by an event.

Key Types:
  - Publisher: Announces deletions on [constants.ChannelCastDeleted].
  - Listener: Subscribes to the channel and hands each id to a callback.
  - Discard: A publisher used when Redis is not configured.
*/
package castevent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/cinecast/internal/platform/constants"
	"github.com/taibuivan/cinecast/internal/platform/metrics"
)

// Metric label values.
const (
	directionPublished = "published"
	directionReceived  = "received"
	statusOK           = "ok"
	statusFailed       = "failed"
)

// # Encoding

// Encode renders a cast id as an event payload.
func Encode(castID int64) string {
	return strconv.FormatInt(castID, 10)
}

// Decode parses an event payload back into a cast id.
func Decode(payload string) (int64, error) {
	castID, err := strconv.ParseInt(strings.TrimSpace(payload), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("castevent: invalid payload %q: %w", payload, err)
	}
	if castID <= 0 {
		return 0, fmt.Errorf("castevent: invalid cast id %d", castID)
	}
	return castID, nil
}

// # Publishing

// PublishClient is the subset of [redis.Client] used for publishing.
type PublishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Publisher announces cast deletions on Redis.
type Publisher struct {
	client  PublishClient
	metrics *metrics.Metrics
}

// NewPublisher builds a publisher over client. m may be nil.
func NewPublisher(client PublishClient, m *metrics.Metrics) *Publisher {
	return &Publisher{client: client, metrics: m}
}

// CastDeleted publishes the id of a deleted cast.
func (publisher *Publisher) CastDeleted(ctx context.Context, castID int64) error {
	err := publisher.client.Publish(ctx, constants.ChannelCastDeleted, Encode(castID)).Err()
	countEvent(publisher.metrics, directionPublished, err)

	if err != nil {
		return fmt.Errorf("castevent: publish cast %d: %w", castID, err)
	}
	return nil
}

// Discard is a publisher that drops every event.
type Discard struct{}

// CastDeleted implements the publisher contract and does nothing.
func (Discard) CastDeleted(context.Context, int64) error { return nil }

// # Listening

// HandlerFunc reacts to the deletion of a cast.
type HandlerFunc func(ctx context.Context, castID int64) error

// Listener consumes cast deletion events.
type Listener struct {
	handle  HandlerFunc
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewListener builds a listener calling handle for every valid event. m may be nil.
func NewListener(handle HandlerFunc, m *metrics.Metrics, logger *slog.Logger) *Listener {
	return &Listener{handle: handle, metrics: m, logger: logger}
}

// Listen subscribes to the deletion channel and blocks until ctx is cancelled.
func (listener *Listener) Listen(ctx context.Context, client *redis.Client) error {
	subscription := client.Subscribe(ctx, constants.ChannelCastDeleted)
	defer subscription.Close()

	// Wait for the subscription to be confirmed before reporting readiness.
	if _, err := subscription.Receive(ctx); err != nil {
		return fmt.Errorf("castevent: subscribe: %w", err)
	}
	listener.logger.Info("cast_event_listener_started", slog.String("channel", constants.ChannelCastDeleted))

	listener.Consume(ctx, subscription.Channel())
	return nil
}

// Consume dispatches messages until ctx is cancelled or messages is closed.
func (listener *Listener) Consume(ctx context.Context, messages <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			listener.logger.Info("cast_event_listener_stopped")
			return
		case message, ok := <-messages:
			if !ok {
				listener.logger.Warn("cast_event_channel_closed")
				return
			}
			if message.Channel != constants.ChannelCastDeleted {
				continue
			}
			listener.Dispatch(ctx, message.Payload)
		}
	}
}

// Dispatch decodes a single payload and runs the handler. Failures are logged
// and counted, never returned, so one bad event cannot stop the listener.
func (listener *Listener) Dispatch(ctx context.Context, payload string) {
	castID, err := Decode(payload)
	if err != nil {
		listener.logger.WarnContext(ctx, "cast_event_malformed", slog.String("payload", payload), slog.Any("error", err))
		countEvent(listener.metrics, directionReceived, err)
		return
	}

	err = listener.handle(ctx, castID)
	countEvent(listener.metrics, directionReceived, err)

	if err != nil {
		listener.logger.ErrorContext(ctx, "cast_event_handler_failed", slog.Int64("cast_id", castID), slog.Any("error", err))
	}
}

func countEvent(m *metrics.Metrics, direction string, err error) {
	if m == nil {
		return
	}
	status := statusOK
	if err != nil {
		status = statusFailed
	}
	m.CastEvents.WithLabelValues(direction, status).Inc()
}
