package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"strategy-shop/pkg/log"
)

// NATSConfig holds the NATS connection settings.
type NATSConfig struct {
	URL   string
	Token string
}

type natsPublisher struct {
	conn *nats.Conn
	l    log.Logger
}

// NewNATS connects to NATS. The connection keeps retrying in the background
// when the server is not reachable yet.
func NewNATS(ctx context.Context, cfg NATSConfig, l log.Logger) (Publisher, error) {
	opts := []nats.Option{
		nats.Name("strategy-shop"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				l.Warnf(ctx, "nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			l.Info(ctx, "nats reconnected")
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &natsPublisher{conn: nc, l: l}, nil
}

func (p *natsPublisher) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
