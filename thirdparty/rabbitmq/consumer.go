package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingEventHandler processes one decoded message; a returned error requeues it.
type BookingEventHandler func(ctx context.Context, msg BookingEventMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler BookingEventHandler
}

func NewConsumer(host string, port int, user, password string, handler BookingEventHandler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

// Start consumes until ctx is done or the channel closes. The returned
// channel is closed when the delivery loop exits.
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		BookingEventQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return done, nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event BookingEventMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] unmarshal booking event", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, event); err != nil {
		logger.Error("[Consumer] handle booking event",
			zap.Uint64("booking_id", event.BookingID),
			zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[Consumer] booking event recorded", zap.Uint64("booking_id", event.BookingID), zap.String("type", string(event.Type)))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
