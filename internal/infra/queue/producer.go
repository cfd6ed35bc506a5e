package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CallInitiatedPayload is published once per successfully initiated call so
// the worker can pull duration/recording details from the provider later.
type CallInitiatedPayload struct {
	CallSid   string `json:"call_sid"`
	ContactID string `json:"contact_id"`
	To        string `json:"to"`
}

type CallEventProducerInterface interface {
	PublishCallInitiated(ctx context.Context, payload CallInitiatedPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishCallInitiated(ctx context.Context, payload CallInitiatedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal call event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("publish call event: %w", err)
	}

	return nil
}
