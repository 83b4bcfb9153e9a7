package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const publishTimeout = 500 * time.Millisecond

// RedisGateway publishes notices to per-recipient Redis pub/sub channels.
// Subscribers (mobile push bridges, websocket fan-outs) are out of scope;
// a publish with zero subscribers is still a success.
type RedisGateway struct {
	client *redis.Client
}

// NewRedisGateway creates a gateway over an existing Redis client.
func NewRedisGateway(client *redis.Client) *RedisGateway {
	return &RedisGateway{client: client}
}

// NewRedisClient dials Redis at addr.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// NotifyCourier publishes an offer notice to the courier's channel.
func (g *RedisGateway) NotifyCourier(ctx context.Context, courierID int64, n OfferNotice) error {
	return g.publish(ctx, fmt.Sprintf("notify:courier:%d", courierID), n)
}

// NotifyCustomer publishes a status notice to the customer's channel.
func (g *RedisGateway) NotifyCustomer(ctx context.Context, customerID string, n StatusNotice) error {
	return g.publish(ctx, "notify:customer:"+customerID, n)
}

func (g *RedisGateway) publish(ctx context.Context, channel string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	// a slow broker must not delay offer creation for the next candidate
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := g.client.Publish(pubCtx, channel, body).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

var _ Gateway = (*RedisGateway)(nil)
