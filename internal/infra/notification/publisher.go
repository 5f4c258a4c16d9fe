package notification

import (
	"context"
	"log/slog"
)

// Publisher delivers one encoded event. Implementations must honor ctx deadlines.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Topic() string
	Close() error
}

// LogPublisher writes events to the structured log. Used when Kafka is disabled.
type LogPublisher struct {
	topic string
}

func NewLogPublisher(topic string) *LogPublisher {
	return &LogPublisher{topic: topic}
}

func (p *LogPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.InfoContext(ctx, "low stock event",
		slog.String("topic", p.topic),
		slog.String("key", key),
		slog.String("payload", string(payload)),
	)
	return nil
}

func (p *LogPublisher) Topic() string { return p.topic }

func (p *LogPublisher) Close() error { return nil }
