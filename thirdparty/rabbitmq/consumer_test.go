package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked++
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked++
	f.requeue = requeue
	return nil
}

func TestConsumer_handle(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		handlerErr  error
		wantCalled  bool
		wantAcked   int
		wantNacked  int
		wantRequeue bool
	}{
		{
			name:      "malformed body is dropped",
			body:      `{`,
			wantAcked: 1,
		},
		{
			name:        "handler failure is requeued",
			body:        `{"booking_id":5,"actor_id":1,"type":"updated","repair_status":"Completed","payment_status":"Paid"}`,
			handlerErr:  errors.New("db down"),
			wantCalled:  true,
			wantNacked:  1,
			wantRequeue: true,
		},
		{
			name:       "success",
			body:       `{"booking_id":5,"actor_id":1,"type":"updated","repair_status":"Completed","payment_status":"Paid"}`,
			wantCalled: true,
			wantAcked:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *BookingEventMessage
			c := &Consumer{handler: func(ctx context.Context, msg BookingEventMessage) error {
				got = &msg
				return tt.handlerErr
			}}
			ack := &fakeAcknowledger{}

			c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, Body: []byte(tt.body)})

			assert.Equal(t, tt.wantAcked, ack.acked)
			assert.Equal(t, tt.wantNacked, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
			if tt.wantCalled {
				if assert.NotNil(t, got) {
					assert.Equal(t, uint64(5), got.BookingID)
					assert.Equal(t, constant.RepairStatusCompleted, got.RepairStatus)
					assert.Equal(t, constant.PaymentStatusPaid, got.PaymentStatus)
				}
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
