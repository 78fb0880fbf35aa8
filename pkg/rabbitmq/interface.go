package rabbitmq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"report-srv/pkg/log"
)

const (
	ContentTypeJSON = "application/json"

	KindDirect = "direct"
	KindFanout = "fanout"

	dialRetryDelay = 2 * time.Second
	dialTimeout    = 20 * time.Second
)

var (
	ErrDialTimeout    = errors.New("rabbitmq: gave up dialing")
	ErrInvalidBinding = errors.New("rabbitmq: binding needs an exchange and a queue")
)

// IRabbitMQ is a self-healing RabbitMQ connection. Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Channel() (IChannel, error)
	IsReady() bool
	Close()
}

// IChannel survives reconnects: after the connection recovers it is re-opened in place.
type IChannel interface {
	// DeclareBinding declares the exchange, the queue and the binding between them.
	DeclareBinding(b Binding) error
	Qos(prefetch int) error
	Publish(ctx context.Context, exchange, key string, msg Publishing) error
	// Consume starts a manual-ack consumer on queue.
	Consume(queue, tag string) (<-chan amqp.Delivery, error)
	Close() error
}

// NewRabbitMQ dials url, retrying for up to 20s.
func NewRabbitMQ(url string, l log.Logger) (IRabbitMQ, error) {
	conn := &connectionImpl{url: url, l: l}
	if err := conn.dial(); err != nil {
		return nil, err
	}
	return conn, nil
}
