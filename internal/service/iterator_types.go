package service

import (
	"context"
	"github.com/segmentio/kafka-go"
)

// MessageIterator is the message source read by Iterator, typically a
// kafkaclient.KafkaConsumer. Starting and stopping it is the caller's job.
type MessageIterator interface {
	// Messages is closed when the source stops.
	Messages() <-chan kafka.Message

	// CommitOffset acknowledges msg.
	CommitOffset(ctx context.Context, msg kafka.Message) error
}

// DecodeFunc turns a raw message value into an item of type T. It must not
// retain data.
type DecodeFunc[T any] func(data []byte) (T, error)
