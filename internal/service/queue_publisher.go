// Package service publishes activity events to RabbitMQ. Publish failures
// are logged and returned so callers can ignore them without interrupting
// the request.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/go-hclog"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/venue-booking/internal/queue"
)

const dialTimeout = 2 * time.Second

// Publisher dials the broker per publish. Mutations are infrequent form
// submissions, so there is no long-lived connection to supervise.
type Publisher struct {
	url   string
	queue string
	log   hclog.Logger
}

func NewPublisher(url, queueName string, log hclog.Logger) *Publisher {
	if queueName == "" {
		queueName = queue.DefaultQueue
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Publisher{url: url, queue: queueName, log: log}
}

// Publish sends ev to the activity queue as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, ev queue.ActivityEvent) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Dial:      amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		p.log.Warn("dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.log.Warn("queue declare failed", "queue", p.queue, "error", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Type:         ev.Kind,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Warn("publish failed", "kind", ev.Kind, "error", err)
		return err
	}
	p.log.Debug("published", "kind", ev.Kind, "entity_id", ev.EntityID)
	return nil
}

// NopPublisher drops every event. It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, queue.ActivityEvent) error { return nil }
