// Package webpush sends Web Push messages signed with VAPID keys.
package webpush

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	webpushgo "github.com/SherClockHolmes/webpush-go"
)

// Subscription identifies one browser push endpoint.
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Client holds the VAPID identity used to sign requests.
type Client struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
	client     *http.Client
}

// NewClient creates a Client. subscriber is the VAPID contact email.
func NewClient(publicKey, privateKey, subscriber string, ttl time.Duration, timeout time.Duration) *Client {
	return &Client{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		ttl:        int(ttl.Seconds()),
		client:     &http.Client{Timeout: timeout},
	}
}

// Configured reports whether both VAPID keys and the contact are set.
func (c *Client) Configured() bool {
	return c.publicKey != "" && c.privateKey != "" && c.subscriber != ""
}

// Send pushes message to sub and returns the push service status code. A
// non-nil error means the request could not be completed; callers inspect
// the status code for rejections.
func (c *Client) Send(ctx context.Context, sub Subscription, message []byte) (int, error) {
	resp, err := webpushgo.SendNotificationWithContext(ctx, message, &webpushgo.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpushgo.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpushgo.Options{
		HTTPClient:      c.client,
		Subscriber:      c.subscriber,
		TTL:             c.ttl,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
	})
	if err != nil {
		return 0, fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
