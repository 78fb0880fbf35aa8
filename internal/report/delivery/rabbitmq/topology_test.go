package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgRabbitMQ "report-srv/pkg/rabbitmq"
)

type recordingChannel struct {
	bindings []pkgRabbitMQ.Binding
}

func (r *recordingChannel) DeclareBinding(b pkgRabbitMQ.Binding) error {
	r.bindings = append(r.bindings, b)
	return nil
}
func (r *recordingChannel) Qos(int) error { return nil }
func (r *recordingChannel) Publish(context.Context, string, string, pkgRabbitMQ.Publishing) error {
	return nil
}
func (r *recordingChannel) Consume(string, string) (<-chan amqp.Delivery, error) { return nil, nil }
func (r *recordingChannel) Close() error                                         { return nil }

func TestTopologyDeclare(t *testing.T) {
	ch := &recordingChannel{}
	require.NoError(t, Topology{Exchange: "report", Queue: "report.generate"}.Declare(ch))
	require.Len(t, ch.bindings, 1)
	assert.Equal(t, "report.generate", ch.bindings[0].RoutingKey)
	assert.Empty(t, ch.bindings[0].DeadLetterExchange)

	ch = &recordingChannel{}
	require.NoError(t, Topology{
		Exchange:        "report",
		Queue:           "report.generate",
		RoutingKey:      "generate",
		DeadLetterQueue: "report.generate.dead",
	}.Declare(ch))
	require.Len(t, ch.bindings, 2)
	assert.Equal(t, pkgRabbitMQ.Binding{
		Exchange: "report.dlx",
		Kind:     pkgRabbitMQ.KindFanout,
		Queue:    "report.generate.dead",
	}, ch.bindings[0])
	assert.Equal(t, "report.dlx", ch.bindings[1].DeadLetterExchange)
	assert.Equal(t, "generate", ch.bindings[1].RoutingKey)

	assert.Error(t, Topology{Queue: "q"}.Declare(&recordingChannel{}))
}
