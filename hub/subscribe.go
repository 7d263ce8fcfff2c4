package hub

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/corvidhq/go-insteon/plm"
)

// Handler receives deduplicated device events from a subscribe loop.
type Handler func(Event)

// Event is one state-change report delivered to a subscriber.
type Event struct {
	Message    plm.Message
	ReceivedAt time.Time
}

// Subscribe polls the hub continuously and delivers novel messages to handler.
//
// Each cycle reads and parses the status buffer, then walks every decoded
// message in arrival order. A message is delivered unless an identical one
// (same fingerprint) was observed within the status TTL; the last-seen time
// is refreshed on every observation either way, so a device that keeps
// reporting the same state stays suppressed until it goes quiet for a full
// TTL.
//
// Subscribe blocks until ctx is canceled, returning ctx.Err(), or until a
// poll fails, returning the poll error. Handler is invoked from the
// subscribe goroutine; a slow handler delays the next poll.
//
// Multiple goroutines may subscribe on one Client. They share the dedup
// store: a given message is delivered once, to the subscriber whose poll
// observed it first.
func (c *Client) Subscribe(ctx context.Context, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	c.logger.Info("subscribe loop started", "statusTTL", c.cfg.statusTTL)

	for {
		if err := ctx.Err(); err != nil {
			c.logger.Info("subscribe loop stopped", "reason", err)
			return err
		}

		acks, err := c.Poll(ctx)
		if err != nil {
			c.logger.Error("subscribe loop poll failed", "error", err)
			return err
		}

		now := time.Now()
		for _, ack := range acks {
			for _, msg := range ack.Responses {
				c.metrics.incMsgCount()
				c.recordState(msg, now)
				c.publish(msg, now, handler)
			}
		}

		if c.cfg.pollInterval > 0 {
			if err := sleepCtx(ctx, c.cfg.pollInterval); err != nil {
				c.logger.Info("subscribe loop stopped", "reason", err)
				return err
			}
		}
	}
}

// publish delivers msg to handler unless its fingerprint was observed within
// the status TTL, and refreshes the fingerprint's last-seen time.
func (c *Client) publish(msg plm.Message, now time.Time, handler Handler) {
	key := strconv.FormatUint(msg.Fingerprint(), 16)

	if _, seen := c.seen.Get(key); seen {
		c.metrics.incDedupSuppressCount()
	} else {
		handler(Event{Message: msg, ReceivedAt: now})
		c.metrics.incEventPublishCount()
		c.logger.Debug("event published",
			"from", msg.From,
			"to", msg.To,
			"type", msg.Type.String(),
			"status", msg.Status.String(),
		)
	}

	c.seen.Set(key, now, cache.DefaultExpiration)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
