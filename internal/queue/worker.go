package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"booking-app-server/internal/scheduling"
)

// Mailer sends a rendered mail. Implemented by the smtp mailer; tests use
// a fake.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Worker consumes cancellation-mail jobs and sends the mails. Deliveries
// that fail are nacked back onto the queue; the broker owns the retry.
type Worker struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	mailer Mailer
}

func NewWorker(url, exchange, queueName string, mailer Mailer) (*Worker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, scheduling.JobCancellationMail, exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}
	if err := ch.Qos(8, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}
	return &Worker{conn: conn, ch: ch, queue: q.Name, mailer: mailer}, nil
}

// Run consumes deliveries until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.ch.ConsumeWithContext(ctx, w.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	log.Info().Str("queue", w.queue).Msg("cancellation mail worker started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(ctx, d.RoutingKey, d.Body); err != nil {
				log.Error().Err(err).Str("key", d.RoutingKey).Msg("cancellation mail job failed")
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, key string, body []byte) error {
	switch key {
	case scheduling.JobCancellationMail:
		var job scheduling.CancellationMail
		if err := json.Unmarshal(body, &job); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		subject, mailBody := RenderCancellationMail(job)
		return w.mailer.Send(ctx, job.ProviderEmail, subject, mailBody)
	default:
		log.Warn().Str("key", key).Msg("skipping unknown job")
		return nil
	}
}

// RenderCancellationMail builds the subject and body of the mail sent to
// the provider when a client cancels.
func RenderCancellationMail(job scheduling.CancellationMail) (subject, body string) {
	subject = "Agendamento cancelado"
	body = fmt.Sprintf(
		"Olá, %s,\r\n\r\nO agendamento de %s para o dia %s foi cancelado.\r\n",
		job.ProviderName, job.ClientName, scheduling.FormatDate(job.Date),
	)
	return subject, body
}

func (w *Worker) Close() {
	if w.ch != nil {
		_ = w.ch.Close()
	}
	if w.conn != nil {
		_ = w.conn.Close()
	}
}
