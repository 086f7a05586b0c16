package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadIntake is the contract the worker hands decoded payloads to. The
// implementation deduplicates, so replays and self-published events are
// harmless.
type LeadIntake interface {
	IntakeLead(ctx context.Context, payload LeadFoundPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Intake  LeadIntake
}

func NewWorker(ch *amqp.Channel, intake LeadIntake) *Worker {
	return &Worker{
		Channel: ch,
		Intake:  intake,
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
		log.Fatalf("queue: failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadFoundPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("queue: malformed intake message, rejecting: %s", err)
				// Malformed payloads go straight to the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.Intake.IntakeLead(context.Background(), payload); err != nil {
				log.Printf("queue: intake failed for %q: %s", payload.CompanyName, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("queue: worker consuming from %q", queueName)
	<-forever
}
