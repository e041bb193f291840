package notify

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitClient wraps one AMQP connection with a declared exchange and bound
// queue for booking notifications.
type RabbitClient struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	logger   Logger
}

// NewRabbitClient dials the broker and declares the exchange and queue.
func NewRabbitClient(url, exchange, queue string, logger Logger) (*RabbitClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbit: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: declare queue: %w", err)
	}

	if err := ch.QueueBind(queue, "", exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: bind queue: %w", err)
	}

	logger.Info("Rabbit: initialized (exchange=%s, queue=%s)", exchange, queue)

	return &RabbitClient{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    queue,
		logger:   logger,
	}, nil
}

// Publish sends one JSON message to the exchange.
func (c *RabbitClient) Publish(body []byte) error {
	err := c.channel.Publish(c.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("rabbit: publish: %w", err)
	}
	return nil
}

// delivery is the acknowledgement surface of amqp.Delivery.
type delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// Consume starts delivering queue messages to the handler in a background
// goroutine.
func (c *RabbitClient) Consume(handler func(body []byte) error) error {
	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbit: consume: %w", err)
	}

	go func() {
		for d := range msgs {
			c.dispatch(d, d.Body, handler)
		}
	}()

	c.logger.Info("Rabbit: consuming from queue %s", c.queue)
	return nil
}

// dispatch acks the message on success. A handler error nacks without
// requeue: a message the handler cannot process would fail the same way on
// every redelivery and loop forever.
func (c *RabbitClient) dispatch(d delivery, body []byte, handler func(body []byte) error) {
	if err := handler(body); err != nil {
		c.logger.Warn("Rabbit: handler failed, dropping message: %v", err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// Close shuts the channel and the connection.
func (c *RabbitClient) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.logger.Info("Rabbit: connection closed")
}
