package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SignedEventPayload is the event published after a quotation is marked
// signed. Carries everything downstream consumers need so they never have
// to call back into this service.
type SignedEventPayload struct {
	QuotationID  string `json:"quotation_id"`
	ContractID   string `json:"contract_id"`
	CustomerName string `json:"customer_name"`
	ContactEmail string `json:"contact_email"`
	Company      string `json:"company"`

	SignedPDFURL  string `json:"signed_pdf_url"`
	SignatureDate string `json:"signature_date"`

	Origin string `json:"origin"`
}

type QueueProducerInterface interface {
	PublishSigned(ctx context.Context, payload SignedEventPayload) error
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

func (p *RabbitMQProducer) PublishSigned(ctx context.Context, payload SignedEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal signed event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish signed event: %w", err)
	}

	return nil
}
