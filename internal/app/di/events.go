package di

import (
	"context"
	"log/slog"

	"shop_backend/internal/config"
	"shop_backend/internal/platform/events"
)

// Publisher is an event sink that must be closed on shutdown.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
	Close()
}

// NewOrderPublisher returns a Kafka publisher for the order topic, or a no-op
// publisher when no brokers are configured.
func NewOrderPublisher(cfg config.KafkaConfig) (Publisher, error) {
	if !cfg.Enabled() {
		slog.Info("KAFKA_BROKERS not set. Order events are disabled.")
		return events.NopPublisher{}, nil
	}
	cl, err := events.NewKafkaClient(cfg.Brokers)
	if err != nil {
		return nil, err
	}
	slog.Info("order events enabled", "brokers", cfg.Brokers, "topic", cfg.OrderTopic)
	return events.NewKafkaPublisher(cl, cfg.OrderTopic), nil
}
