// Package service contains helpers used by application services.
// In particular, it provides an Iterator that consumes messages from a
// message source (e.g., Kafka via pkg/kafkaclient) and decodes each one with
// a pluggable DecodeFunc.
package service

import (
	"context"
	"log"
)

// Iterator consumes messages from a MessageIterator, decodes each one and
// yields the decoded items on a channel. It is generic over the item type T.
//
// The Iterator does not manage the lifecycle of the underlying message source;
// callers should start/stop their consumer outside and pass in an implementation
// of MessageIterator.
type Iterator[T any] struct {
	msgIterator MessageIterator
	decode      DecodeFunc[T]
}

// NewIterator constructs an Iterator for the provided message source and
// decoder.
func NewIterator[T any](iterator MessageIterator, decode DecodeFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		msgIterator: iterator,
		decode:      decode,
	}
}

// Objects starts a goroutine that:
//  1. Receives messages from the underlying MessageIterator
//  2. Decodes each message value with the DecodeFunc
//  3. Emits the item on the returned channel
//  4. Commits the message offset once the item has been taken
//
// Messages that fail to decode are logged, committed and skipped so a poison
// message cannot stall the stream. The output channel is closed when the
// underlying Messages() channel is closed or ctx is done.
func (it *Iterator[T]) Objects(ctx context.Context) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)

		for msg := range it.msgIterator.Messages() {
			item, err := it.decode(msg.Value)
			if err != nil {
				log.Printf("Skipping undecodable message at offset %d: %v", msg.Offset, err)
			} else {
				select {
				case out <- item:
				case <-ctx.Done():
					return
				}
			}

			if err := it.msgIterator.CommitOffset(ctx, msg); err != nil {
				log.Printf("Failed to commit offset: %v", err)
			}
		}
	}()
	return out
}
