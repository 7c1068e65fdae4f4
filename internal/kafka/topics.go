package kafka

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"refspring/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Event topics. Keys are the owning campaign id so one campaign's events stay ordered.
const (
	TopicConversionEvents = "refspring.events.conversion"
	TopicLifecycleEvents  = "refspring.events.lifecycle"
	TopicPayoutEvents     = "refspring.events.payout"
)

// TopicConfig represents Kafka topic configuration
type TopicConfig struct {
	Name              string
	NumPartitions     int
	ReplicationFactor int
	RetentionHours    int
	Description       string
}

// GetTopicConfigs returns all topic configurations
func GetTopicConfigs() []TopicConfig {
	return []TopicConfig{
		{
			Name:              TopicConversionEvents,
			NumPartitions:     10,
			ReplicationFactor: 3,
			RetentionHours:    720,
			Description:       "Conversion settled and decided events",
		},
		{
			Name:              TopicLifecycleEvents,
			NumPartitions:     3,
			ReplicationFactor: 3,
			RetentionHours:    2160,
			Description:       "Campaign and affiliate deletion events",
		},
		{
			Name:              TopicPayoutEvents,
			NumPartitions:     3,
			ReplicationFactor: 3,
			RetentionHours:    2160,
			Description:       "Payout account and transfer status changes",
		},
	}
}

// toKafkaTopics converts configs for CreateTopics. A positive replication
// overrides every topic's factor, for single-broker environments.
func toKafkaTopics(configs []TopicConfig, replication int) []kafka.TopicConfig {
	topics := make([]kafka.TopicConfig, 0, len(configs))
	for _, tc := range configs {
		factor := tc.ReplicationFactor
		if replication > 0 {
			factor = replication
		}
		topics = append(topics, kafka.TopicConfig{
			Topic:             tc.Name,
			NumPartitions:     tc.NumPartitions,
			ReplicationFactor: factor,
			ConfigEntries: []kafka.ConfigEntry{
				{ConfigName: "retention.ms", ConfigValue: strconv.Itoa(tc.RetentionHours * 3600 * 1000)},
			},
		})
	}
	return topics
}

// EnsureTopics creates the event topics on the cluster controller. Topics
// that already exist are left untouched.
func EnsureTopics(ctx context.Context, brokers []string, replication int, logger *observability.Logger) error {
	if len(brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}

	conn, err := kafka.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("failed to dial kafka: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("failed to find kafka controller: %w", err)
	}
	controllerConn, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("failed to dial kafka controller: %w", err)
	}
	defer controllerConn.Close()

	if err := controllerConn.CreateTopics(toKafkaTopics(GetTopicConfigs(), replication)...); err != nil {
		return fmt.Errorf("failed to create topics: %w", err)
	}
	logger.Info(ctx, "kafka topics ensured")
	return nil
}
