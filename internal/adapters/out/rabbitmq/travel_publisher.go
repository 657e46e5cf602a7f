// Package rabbitmq publishes tracking events to a RabbitMQ fanout exchange.
package rabbitmq

import (
	"context"
	"fmt"

	"tracking/internal/adapters/out/events"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the durable fanout exchange consumers bind their queues to.
const ExchangeName = "courier.events"

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type TravelPublisher struct {
	ch Channel
}

var _ ports.TravelEventPublisher = (*TravelPublisher)(nil)

// Dial connects to url and opens a channel for NewTravelPublisher.
// The caller closes the returned connection.
func Dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq connect: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	return conn, ch, nil
}

func NewTravelPublisher(ch Channel) (*TravelPublisher, error) {
	if err := ch.ExchangeDeclare(ExchangeName, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &TravelPublisher{ch: ch}, nil
}

func (p *TravelPublisher) PublishTravelRecorded(ctx context.Context, r *travel.Record) error {
	body, err := events.EncodeTravelRecorded(r)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, ExchangeName, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    r.ID().String(),
		Type:         events.TravelRecordedType,
		Timestamp:    r.Timestamp().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish travel recorded: %w", err)
	}

	return nil
}

func (p *TravelPublisher) Close() error {
	return p.ch.Close()
}
