package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/roothome/esign-bridge/internal/infra/integration/crm"
)

// CRMService is the downstream consumer of signed events.
type CRMService interface {
	RecordSignedQuotation(input crm.SignedQuotationInput) error
}

type Worker struct {
	Channel *amqp.Channel
	CRM     CRMService
}

func NewWorker(ch *amqp.Channel, crmClient CRMService) *Worker {
	return &Worker{
		Channel: ch,
		CRM:     crmClient,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual ack only)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload SignedEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message, reject without requeue so the queue
				// does not jam.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] processing signed event for quotation %s", payload.QuotationID)

			if err := w.process(payload); err != nil {
				log.Printf("❌ [WORKER] CRM integration failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) process(payload SignedEventPayload) error {
	return w.CRM.RecordSignedQuotation(crm.SignedQuotationInput{
		QuotationID:  payload.QuotationID,
		ContractID:   payload.ContractID,
		CustomerName: payload.CustomerName,
		Email:        payload.ContactEmail,
		Company:      payload.Company,
		SignedPDFURL: payload.SignedPDFURL,
		SignedDate:   payload.SignatureDate,
	})
}
