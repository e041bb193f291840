package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDelivery struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (d *fakeDelivery) Ack(bool) error {
	d.acked = true
	return nil
}

func (d *fakeDelivery) Nack(_, requeue bool) error {
	d.nacked = true
	d.requeue = requeue
	return nil
}

func TestRabbitClient_Dispatch_AcksOnSuccess(t *testing.T) {
	c := &RabbitClient{logger: nopLogger{}}
	d := &fakeDelivery{}

	c.dispatch(d, []byte(`{}`), func([]byte) error { return nil })

	assert.True(t, d.acked)
	assert.False(t, d.nacked)
}

func TestRabbitClient_Dispatch_DropsOnHandlerError(t *testing.T) {
	c := &RabbitClient{logger: nopLogger{}}
	d := &fakeDelivery{}

	c.dispatch(d, []byte(`{}`), func([]byte) error { return errors.New("boom") })

	assert.False(t, d.acked)
	assert.True(t, d.nacked)
	assert.False(t, d.requeue, "a failing message must not loop back onto the queue")
}
