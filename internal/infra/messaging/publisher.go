package messaging

import (
	"context"
	"time"

	"room-reservation-engine/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Message struct {
	ID         string
	Kind       string
	Body       []byte
	OccurredAt time.Time
}

// Publisher sends outbox events to a durable topic exchange, routed by event kind.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: channel open failed")
	}
	if err := ch.ExchangeDeclare(
		exchange, // name
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: exchange declare failed")
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, m Message) error {
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    m.ID,
		Type:         m.Kind,
		Timestamp:    m.OccurredAt.UTC(),
		Body:         m.Body,
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, m.Kind, false, false, pub); err != nil {
		return errs.Mark(errs.Wrap(err, "rabbitmq: publish "+m.Kind), errs.ErrPublishFailed)
	}
	return nil
}

func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
