package kafkaclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines the interface for a Kafka message writer.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer publishes keyed messages to one topic.
type KafkaProducer struct {
	writer KafkaWriter
	topic  string
}

// NewKafkaProducer creates a producer for topic. Messages with the same key
// keep their order.
func NewKafkaProducer(topic, broker string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaProducer{writer: writer, topic: topic}
}

// Publish writes a single message.
func (kp *KafkaProducer) Publish(ctx context.Context, key, value []byte) error {
	if err := kp.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value}); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", kp.topic, err)
	}
	return nil
}

// Close flushes pending writes.
func (kp *KafkaProducer) Close() {
	if err := kp.writer.Close(); err != nil {
		log.Printf("Failed to close Kafka writer: %v", err)
	}
}
