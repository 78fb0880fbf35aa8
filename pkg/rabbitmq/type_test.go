package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestBinding(t *testing.T) {
	assert.ErrorIs(t, Binding{Queue: "q"}.validate(), ErrInvalidBinding)
	assert.ErrorIs(t, Binding{Exchange: "x"}.validate(), ErrInvalidBinding)

	b := Binding{Exchange: "report", Queue: "report.generate"}
	assert.NoError(t, b.validate())
	assert.Equal(t, KindDirect, b.kind())
	assert.Nil(t, b.queueArgs())

	b.Kind = KindFanout
	b.DeadLetterExchange = "report.dlx"
	assert.Equal(t, KindFanout, b.kind())
	assert.Equal(t, amqp.Table{"x-dead-letter-exchange": "report.dlx"}, b.queueArgs())
}
