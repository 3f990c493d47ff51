package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"storefront/pkg/domain/service"
)

// AMQPDispatcher publishes domain events as JSON to a fanout exchange.
type AMQPDispatcher struct {
	ch       *amqp.Channel
	exchange string
}

var _ service.EventDispatcher = (*AMQPDispatcher)(nil)

func NewAMQPDispatcher(conn *amqp.Connection, exchange string) (*AMQPDispatcher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "declare exchange")
	}
	return &AMQPDispatcher{ch: ch, exchange: exchange}, nil
}

type envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func (d *AMQPDispatcher) Dispatch(event service.Event) error {
	body, err := json.Marshal(envelope{
		Type:       event.Type(),
		OccurredAt: time.Now().UTC(),
		Payload:    event,
	})
	if err != nil {
		return errors.Wrap(err, "encode event")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = d.ch.PublishWithContext(ctx, d.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Body:        body,
	})
	return errors.Wrap(err, "publish event")
}

func (d *AMQPDispatcher) Close() error {
	return d.ch.Close()
}
