package main

import (
	"context"
	"landmark/internal/display"
	"landmark/internal/models"
	"log"
	"time"
)

// Publisher sends one keyed message.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// eventSink forwards show and hide intents to the host UI over Kafka. All
// events share one key so they stay ordered.
type eventSink struct {
	ctx       context.Context
	publisher Publisher
	key       []byte
	now       func() time.Time
}

func newEventSink(ctx context.Context, publisher Publisher, key []byte) *eventSink {
	return &eventSink{ctx: ctx, publisher: publisher, key: key, now: time.Now}
}

func (s *eventSink) OnNoChange() {}

func (s *eventSink) OnShow(b models.Building) {
	s.publish(display.NewShowEvent(b, s.now()))
}

func (s *eventSink) OnHide() {
	s.publish(display.NewHideEvent(s.now()))
}

func (s *eventSink) publish(e display.Event) {
	data, err := e.Marshal()
	if err != nil {
		log.Printf("Error encoding %s event: %v", e.Type, err)
		return
	}
	if err := s.publisher.Publish(s.ctx, s.key, data); err != nil {
		log.Printf("Error publishing %s event: %v", e.Type, err)
	}
}
