package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/rabbitmq/amqp091-go"
)

const (
	BookingEventExchange   = "booking_event_exchange"
	BookingEventQueue      = "booking_event_queue"
	BookingEventRoutingKey = "booking_event"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// BookingEventMessage describes one lifecycle change of a booking.
type BookingEventMessage struct {
	BookingID     uint64                    `json:"booking_id"`
	ActorID       uint64                    `json:"actor_id"`
	Type          constant.BookingEventType `json:"type"`
	RepairStatus  constant.RepairStatus     `json:"repair_status"`
	PaymentStatus constant.PaymentStatus    `json:"payment_status"`
	TechnicianID  *uint64                   `json:"technician_id,omitempty"`
	OccurredAt    time.Time                 `json:"occurred_at"`
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology is shared by publisher and consumer so either can start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		BookingEventExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		BookingEventQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		BookingEventQueue,      // queue name
		BookingEventRoutingKey, // routing key
		BookingEventExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishBookingEvent(ctx context.Context, msg BookingEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		BookingEventExchange,   // exchange
		BookingEventRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
