package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrRabbitClosed = errors.New("rabbitmq channel closed")

// rabbitConn is the connection and channel pair shared by publisher and consumer.
type rabbitConn struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func dialQueue(url, queue string) (rabbitConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return rabbitConn{}, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return rabbitConn{}, err
	}
	// Declare durable queue
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return rabbitConn{}, err
	}
	return rabbitConn{conn: conn, ch: ch, Queue: queue}, nil
}

func (r rabbitConn) close() {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

// RabbitPublisher publishes JSON messages to a single durable queue.
type RabbitPublisher struct {
	rabbitConn
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	rc, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{rabbitConn: rc}, nil
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	p.close()
}

// PublishJSON publishes a persistent JSON-encoded message to the queue.
func (p *RabbitPublisher) PublishJSON(ctx context.Context, body any) error {
	if p == nil || p.ch == nil || p.ch.IsClosed() {
		return ErrRabbitClosed
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         b,
		},
	)
}

// RabbitConsumer reads manually acknowledged deliveries from a durable queue.
type RabbitConsumer struct {
	rabbitConn
}

// NewRabbitConsumer dials url, declares queue and limits unacked deliveries to prefetch.
func NewRabbitConsumer(url, queue string, prefetch int) (*RabbitConsumer, error) {
	rc, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	if err := rc.ch.Qos(prefetch, 0, false); err != nil {
		rc.close()
		return nil, err
	}
	return &RabbitConsumer{rabbitConn: rc}, nil
}

func (c *RabbitConsumer) Deliveries() (<-chan amqp.Delivery, error) {
	return c.ch.Consume(c.Queue, "", false, false, false, false, nil)
}

func (c *RabbitConsumer) Close() {
	if c == nil {
		return
	}
	c.close()
}
