package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/safebite/safebite/models"
)

// Subscription is a live stream of one topic. C delivers the snapshot first,
// then every change in server order, and is closed when the stream ends for
// any reason. Stop is idempotent and safe to call concurrently with message
// delivery; stopping one subscription never affects another.
type Subscription struct {
	C <-chan models.Notification

	topic string
	conn  *websocket.Conn
	once  sync.Once
}

// Topic returns the topic this subscription streams.
func (s *Subscription) Topic() string {
	return s.topic
}

// Stop closes the underlying connection. The reader goroutine then closes C.
func (s *Subscription) Stop() {
	s.once.Do(func() {
		if s.conn != nil {
			_ = s.conn.Close()
		}
	})
}

func (h *httpServerAdapter) Subscribe(ctx context.Context, topic string) (*Subscription, error) {
	wsURL, err := h.subscribeURL(topic)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: subscribe %s: %w", ErrNetwork, topic, err)
	}

	ch := make(chan models.Notification)
	sub := &Subscription{C: ch, topic: topic, conn: conn}

	go func() {
		defer close(ch)
		for {
			var notification models.Notification
			if err := conn.ReadJSON(&notification); err != nil {
				return
			}
			select {
			case ch <- notification:
			case <-ctx.Done():
				sub.Stop()
				return
			}
		}
	}()

	return sub, nil
}

// subscribeURL converts the adapter's base URL into the websocket endpoint
// for the given topic, carrying the bearer token as a query parameter since
// websocket handshakes cannot rely on custom headers everywhere.
func (h *httpServerAdapter) subscribeURL(topic string) (string, error) {
	base, err := url.Parse(h.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	switch base.Scheme {
	case "https":
		base.Scheme = "wss"
	default:
		base.Scheme = "ws"
	}

	base.Path = strings.TrimRight(base.Path, "/") + "/api/subscribe"

	query := base.Query()
	query.Set("topic", topic)
	if token := h.Token(); token != "" {
		query.Set("token", token)
	}
	base.RawQuery = query.Encode()

	return base.String(), nil
}
