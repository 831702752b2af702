// Package events publishes domain events as JSON records to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// ProducerClient is the part of *kgo.Client the publisher uses.
type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// KafkaPublisher writes each event to one topic, keyed for per-entity ordering.
type KafkaPublisher struct {
	cl    ProducerClient
	topic string
}

// NewKafkaClient builds a franz-go client for brokers.
func NewKafkaClient(brokers []string) (*kgo.Client, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchMaxBytes(1<<20),
		kgo.RecordDeliveryTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return cl, nil
}

// NewKafkaPublisher creates a KafkaPublisher on cl.
func NewKafkaPublisher(cl ProducerClient, topic string) *KafkaPublisher {
	return &KafkaPublisher{cl: cl, topic: topic}
}

// Publish encodes payload as JSON and waits for the broker to acknowledge it.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	rec := &kgo.Record{Topic: p.topic, Key: []byte(key), Value: b}
	if err := p.cl.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the client.
func (p *KafkaPublisher) Close() {
	slog.Info("closing kafka publisher", "topic", p.topic)
	p.cl.Close()
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Close does nothing.
func (NopPublisher) Close() {}
