package notification

import (
	"context"

	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/internal/pkg/errs"

	otelkafka "github.com/Trendyol/otel-kafka-konsumer"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Producer is the part of a kafka writer the publisher needs.
type Producer interface {
	WriteMessage(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer Producer
	topic    string
}

// NewKafkaPublisher builds a traced writer; the trace context travels in the
// message headers.
func NewKafkaPublisher(cfg config.KafkaConfig, tp trace.TracerProvider) (*KafkaPublisher, error) {
	base := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.LowStockTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	writer, err := otelkafka.NewWriter(base,
		otelkafka.WithTracerProvider(tp),
		otelkafka.WithPropagator(propagation.TraceContext{}),
		otelkafka.WithAttributes(
			[]attribute.KeyValue{
				semconv.MessagingDestinationNameKey.String(cfg.LowStockTopic),
			},
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "create kafka writer")
	}

	return NewKafkaPublisherWithProducer(writer, cfg.LowStockTopic), nil
}

func NewKafkaPublisherWithProducer(producer Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish keys messages by product id so events of one product stay ordered
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
	}
	if err := p.producer.WriteMessage(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish to %s", p.topic)
	}
	return nil
}

func (p *KafkaPublisher) Topic() string { return p.topic }

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
