package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadFoundPayload announces a freshly stored lead to downstream consumers.
type LeadFoundPayload struct {
	LeadID      int64   `json:"lead_id"`
	CompanyName string  `json:"company_name"`
	Country     *string `json:"country,omitempty"`
	Website     *string `json:"website,omitempty"`
	Email       *string `json:"email,omitempty"`
	Source      string  `json:"source"`
	FoundAt     string  `json:"found_at"`
}

// CampaignCompletedPayload announces a finished campaign run.
type CampaignCompletedPayload struct {
	CampaignID  int64  `json:"campaign_id"`
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	SentCount   int    `json:"sent_count"`
	FailedCount int    `json:"failed_count"`
	CompletedAt string `json:"completed_at"`
}

type ProducerInterface interface {
	PublishLeadFound(ctx context.Context, payload LeadFoundPayload) error
	PublishCampaignCompleted(ctx context.Context, payload CampaignCompletedPayload) error
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

func (p *RabbitMQProducer) PublishLeadFound(ctx context.Context, payload LeadFoundPayload) error {
	if payload.FoundAt == "" {
		payload.FoundAt = time.Now().UTC().Format(time.RFC3339)
	}
	return p.publish(ctx, RoutingKeyLeadFound, payload)
}

func (p *RabbitMQProducer) PublishCampaignCompleted(ctx context.Context, payload CampaignCompletedPayload) error {
	if payload.CompletedAt == "" {
		payload.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return p.publish(ctx, RoutingKeyCampaignCompleted, payload)
}

func (p *RabbitMQProducer) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return nil
}
