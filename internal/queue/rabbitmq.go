package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Job routing keys. One durable queue is bound per key.
const (
	JobIngest  = "resource.ingest"
	JobAnalyze = "resource.analyze"
)

// Handler processes one job delivery for a resource.
type Handler func(ctx context.Context, resourceID uuid.UUID) error

// JobMessage is the wire format for pipeline jobs.
type JobMessage struct {
	Job        string    `json:"job"`
	ResourceID uuid.UUID `json:"resource_id"`
	Attempt    int       `json:"attempt"`
	Timestamp  time.Time `json:"timestamp"`
}

type Config struct {
	URL      string
	Exchange string
	Prefetch int
}

// RabbitMQ is both the job publisher and the job runner. Failed
// deliveries are republished with an incremented attempt counter up
// to the configured maximum, then dropped with a terminal log entry.
type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	prefetch int
	logger   *slog.Logger

	mu sync.Mutex // guards publishes on the shared channel
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	for _, key := range []string{JobIngest, JobAnalyze} {
		q, err := ch.QueueDeclare(
			queueName(cfg.Exchange, key),
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", key, err)
		}

		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue %s: %w", key, err)
		}
	}

	logger.Info("connected to rabbitmq", "exchange", cfg.Exchange)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		prefetch: cfg.Prefetch,
		logger:   logger,
	}, nil
}

func queueName(exchange, key string) string {
	return exchange + "." + key
}

// EnqueueIngestion publishes a first-stage job for the resource.
func (r *RabbitMQ) EnqueueIngestion(ctx context.Context, resourceID uuid.UUID) error {
	return r.publish(ctx, JobMessage{Job: JobIngest, ResourceID: resourceID, Attempt: 1})
}

// EnqueueAnalysis publishes a second-stage job for the resource.
func (r *RabbitMQ) EnqueueAnalysis(ctx context.Context, resourceID uuid.UUID) error {
	return r.publish(ctx, JobMessage{Job: JobAnalyze, ResourceID: resourceID, Attempt: 1})
}

func (r *RabbitMQ) publish(ctx context.Context, msg JobMessage) error {
	msg.Timestamp = time.Now().UTC()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		msg.Job,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("enqueued job",
		"job", msg.Job,
		"resource_id", msg.ResourceID,
		"attempt", msg.Attempt,
	)

	return nil
}

// Consume runs the delivery loop for one job queue until ctx is done.
// A handler error consumes one of the message's attempts; exhausted
// messages are acked and logged as failed.
func (r *RabbitMQ) Consume(ctx context.Context, job string, handler Handler, maxAttempts int) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(r.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.Consume(
		queueName(r.exchange, job),
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", job, err)
	}

	r.logger.Info("consuming jobs", "job", job, "max_attempts", maxAttempts)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for %s", job)
			}
			r.handleDelivery(ctx, job, handler, maxAttempts, d)
		}
	}
}

func (r *RabbitMQ) handleDelivery(ctx context.Context, job string, handler Handler, maxAttempts int, d amqp.Delivery) {
	var msg JobMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		r.logger.Error("discarding malformed job message", "job", job, "error", err)
		_ = d.Ack(false)
		return
	}

	err := handler(ctx, msg.ResourceID)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	if msg.Attempt >= maxAttempts {
		r.logger.Error("job failed permanently",
			"job", job,
			"resource_id", msg.ResourceID,
			"attempts", msg.Attempt,
			"error", err,
		)
		_ = d.Ack(false)
		return
	}

	r.logger.Warn("job failed, requeueing",
		"job", job,
		"resource_id", msg.ResourceID,
		"attempt", msg.Attempt,
		"error", err,
	)

	retry := msg
	retry.Attempt++
	if pubErr := r.publish(ctx, retry); pubErr != nil {
		// Keep the delivery alive if we could not requeue it ourselves.
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
