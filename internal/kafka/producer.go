package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"refspring/internal/observability"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Producer writes JSON messages, routing each one by its Topic
type Producer struct {
	writer   *kafka.Writer
	clientID string
	logger   *observability.Logger
	now      func() time.Time
}

// ProducerConfig holds configuration for the Kafka producer
type ProducerConfig struct {
	Brokers []string
	// ClientID is stamped on every message as the "producer" header
	ClientID string
	// Compression can be: none, gzip, snappy, lz4, zstd
	Compression  string
	BatchTimeout time.Duration
	// RequiredAcks: -1 all replicas, 1 leader only. Zero means -1.
	RequiredAcks int
}

// NewProducer creates a synchronous producer. Messages are partitioned by
// key hash so events of one campaign keep their order.
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	var compression kafka.Compression
	switch config.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "snappy":
		compression = kafka.Snappy
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	}

	if config.BatchTimeout == 0 {
		config.BatchTimeout = 10 * time.Millisecond
	}
	if config.RequiredAcks == 0 {
		config.RequiredAcks = -1
	}
	if config.ClientID == "" {
		config.ClientID = "refspring"
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(config.Brokers...),
			Balancer:               &kafka.Hash{},
			Compression:            compression,
			BatchTimeout:           config.BatchTimeout,
			RequiredAcks:           kafka.RequiredAcks(config.RequiredAcks),
			AllowAutoTopicCreation: false,
		},
		clientID: config.ClientID,
		logger:   logger,
		now:      time.Now,
	}
}

// Message is one outbound message; Value is JSON encoded
type Message struct {
	Topic     string
	Key       string
	Value     interface{}
	Headers   map[string]string
	Timestamp time.Time
}

// ProduceMessage encodes msg and writes it, blocking until the configured
// acks are received
func (p *Producer) ProduceMessage(ctx context.Context, msg Message) error {
	kafkaMsg, err := p.encode(msg)
	if err != nil {
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "topic", Value: msg.Topic},
		observability.Field{Key: "message_key", Value: msg.Key},
	)
	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		p.logger.Error(ctx, "failed to write message", err)
		return fmt.Errorf("failed to write message to topic %s: %w", msg.Topic, err)
	}

	p.logger.Debug(ctx, "produced message")
	return nil
}

func (p *Producer) encode(msg Message) (kafka.Message, error) {
	if msg.Topic == "" {
		return kafka.Message{}, fmt.Errorf("message has no topic")
	}
	value, err := json.Marshal(msg.Value)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal message value: %w", err)
	}

	ts := msg.Timestamp
	if ts.IsZero() {
		ts = p.now()
	}

	headers := make([]kafka.Header, 0, len(msg.Headers)+3)
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	headers = append(headers,
		kafka.Header{Key: "message_id", Value: []byte(uuid.New().String())},
		kafka.Header{Key: "produced_at", Value: []byte(ts.UTC().Format(time.RFC3339))},
		kafka.Header{Key: "producer", Value: []byte(p.clientID)},
	)

	return kafka.Message{
		Topic:   msg.Topic,
		Key:     []byte(msg.Key),
		Value:   value,
		Headers: headers,
		Time:    ts,
	}, nil
}

// Close flushes pending writes and closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
