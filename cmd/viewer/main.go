package main

import (
	"context"
	"landmark/internal/config"
	"landmark/internal/env"
	"landmark/internal/geodesy"
	"landmark/internal/service"
	"landmark/internal/session"
	"landmark/internal/tracking"
	"landmark/pkg/graceful"
	"landmark/pkg/kafkaclient"
	"log"
)

func main() {
	env.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	buildings, err := loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to load building catalog: %v", err)
	}

	log.Printf("Connecting to Kafka broker: %s on topic: %s with group ID: %s", cfg.Kafka.Broker, cfg.Kafka.PoseTopic, cfg.Kafka.GroupID)
	consumer, err := kafkaclient.NewKafkaConsumer(cfg.Kafka.PoseTopic, cfg.Kafka.GroupID, cfg.Kafka.Broker)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer %v", err)
	}
	producer := kafkaclient.NewKafkaProducer(cfg.Kafka.DisplayTopic, cfg.Kafka.Broker)
	defer producer.Close()

	frame := geodesy.NewFrame()
	sink := newEventSink(ctx, producer, []byte(cfg.Kafka.GroupID))
	sess, err := session.New(buildings, frame, cfg.Detection.Params(), sink)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	consumer.StartConsuming(ctx)
	defer consumer.Stop()
	samples := service.NewIterator(consumer, tracking.DecodeSample).Objects(ctx)

	first, err := session.AwaitReady(ctx, samples, cfg.ReadyTimeout, func(status string) {
		log.Println(status)
	})
	if err != nil {
		log.Printf("Tracking never became ready: %v", err)
		return
	}

	handleSample(sess, frame, first)
	for s := range samples {
		handleSample(sess, frame, s)
	}
	log.Println("Pose stream finished, application exiting.")
}

// handleSample fixes the geospatial frame on the first geodetic fix and ticks
// the session for tracking samples. Other samples are dropped.
func handleSample(sess *session.Session, frame *geodesy.Frame, s tracking.Sample) {
	if !s.Tracking() {
		return
	}
	pose := s.Pose()
	if s.Geo != nil && frame.Fix(*s.Geo, pose.Position) {
		log.Printf("Geospatial frame fixed at lat=%f lon=%f alt=%f", s.Geo.Lat, s.Geo.Lon, s.Geo.Alt)
	}
	sess.Tick(pose)
}
