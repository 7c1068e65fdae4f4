package kafka

import (
	"context"
	"errors"
	"io"

	"refspring/internal/observability"

	"github.com/segmentio/kafka-go"
)

// ErrSkipMessage tells the consumer to commit a message it cannot process.
// Any other handler error leaves the offset uncommitted so the message is redelivered.
var ErrSkipMessage = errors.New("skip message")

// Consumer reads messages from one topic as a member of a consumer group
type Consumer struct {
	reader *kafka.Reader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// Delivery is one message handed to a consumer handler
type Delivery struct {
	Topic     string
	Key       string
	Value     []byte
	Headers   map[string]string
	Partition int
	Offset    int64
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 1
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  config.Brokers,
		Topic:    config.Topic,
		GroupID:  config.GroupID,
		MinBytes: config.MinBytes,
		MaxBytes: config.MaxBytes,
		// new groups only care about events from now on
		StartOffset:    kafka.LastOffset,
		CommitInterval: 0,
	})

	return &Consumer{
		reader: reader,
		logger: logger,
	}
}

// Consume fetches messages until ctx is canceled or the reader is closed.
// Offsets are committed after the handler succeeds or returns ErrSkipMessage.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Delivery) error) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "topic", Value: c.reader.Config().Topic})
	c.logger.Info(ctx, "starting kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.logger.Info(ctx, "stopping kafka consumer")
				return nil
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			continue
		}

		delivery := toDelivery(msg)
		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
			observability.Field{Key: "event_type", Value: delivery.Headers["event_type"]},
		)

		if err := handler(msgCtx, delivery); err != nil {
			if !errors.Is(err, ErrSkipMessage) {
				c.logger.Error(msgCtx, "failed to process message", err)
				continue
			}
			c.logger.WarnWithError(msgCtx, "skipping message", err)
		}

		if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
			c.logger.Error(msgCtx, "failed to commit message", err)
		}
	}
}

func toDelivery(msg kafka.Message) Delivery {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return Delivery{
		Topic:     msg.Topic,
		Key:       string(msg.Key),
		Value:     msg.Value,
		Headers:   headers,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
