package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/twilio"
)

// TelephonyClient is the slice of the provider API the worker needs. The
// HTTP route layer never calls these endpoints; only this worker does.
type TelephonyClient interface {
	GetCallDetails(ctx context.Context, callSid string) (*twilio.CallDetail, error)
	GetCallRecording(ctx context.Context, callSid string) (string, error)
}

type Worker struct {
	Channel   *amqp.Channel
	Telephony TelephonyClient
	CallLogs  entity.CallLogRepositoryInterface
}

func NewWorker(ch *amqp.Channel, telephony TelephonyClient, callLogs entity.CallLogRepositoryInterface) *Worker {
	return &Worker{
		Channel:   ch,
		Telephony: telephony,
		CallLogs:  callLogs,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register rabbitmq consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload CallInitiatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] malformed call event, dropping: %s", err)
				// Rotten message, reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			if err := w.ProcessCallEvent(context.Background(), payload); err != nil {
				log.Printf("[worker] enrichment failed for %s: %s", payload.CallSid, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] call-event worker waiting on queue '%s'", queueName)
	<-forever
}

// ProcessCallEvent pulls the provider's final view of a call and copies it
// onto the existing call_logs row. A log row that was lost at initiation
// time stays lost; this path only enriches rows that exist.
func (w *Worker) ProcessCallEvent(ctx context.Context, payload CallInitiatedPayload) error {
	detail, err := w.Telephony.GetCallDetails(ctx, payload.CallSid)
	if err != nil {
		return err
	}

	recordingURL := ""
	if detail.Status == "completed" {
		recordingURL, err = w.Telephony.GetCallRecording(ctx, payload.CallSid)
		if err != nil {
			// A call without a retrievable recording is still worth logging.
			log.Printf("[worker] no recording for %s: %s", payload.CallSid, err)
			recordingURL = ""
		}
	}

	return w.CallLogs.UpdateCallDetails(ctx, payload.CallSid, detail.Status, detail.Duration, recordingURL)
}
