// Package kafka publishes tracking events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"tracking/internal/adapters/out/events"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// TravelProducer keys messages by courier ID so one courier's events stay
// ordered within a partition.
type TravelProducer struct {
	writer Writer
}

var _ ports.TravelEventPublisher = (*TravelProducer)(nil)

// BatchTimeout bounds how long a write waits for more messages to batch with.
// Publishing runs inline after commit, so it stays well below the library default of 1s.
const BatchTimeout = 10 * time.Millisecond

func NewTravelProducer(brokerURL, topic string) *TravelProducer {
	return &TravelProducer{writer: NewWriter(brokerURL, topic)}
}

// NewWriter returns the writer NewTravelProducer uses.
func NewWriter(brokerURL, topic string) *skafka.Writer {
	return &skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		BatchTimeout: BatchTimeout,
		RequiredAcks: skafka.RequireOne,
	}
}

func NewTravelProducerWithWriter(w Writer) *TravelProducer {
	return &TravelProducer{writer: w}
}

func (p *TravelProducer) PublishTravelRecorded(ctx context.Context, r *travel.Record) error {
	body, err := events.EncodeTravelRecorded(r)
	if err != nil {
		return err
	}

	msg := skafka.Message{
		Key:   []byte(r.CourierID()),
		Value: body,
		Headers: []skafka.Header{
			{Key: "type", Value: []byte(events.TravelRecordedType)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}

	return nil
}

func (p *TravelProducer) Close() error {
	return p.writer.Close()
}
