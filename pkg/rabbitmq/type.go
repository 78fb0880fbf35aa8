package rabbitmq

import (
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"report-srv/pkg/log"
)

// Publishing is the message sent by Publish.
type Publishing = amqp.Publishing

// Binding is a durable exchange routed to a durable queue.
type Binding struct {
	Exchange string
	// Kind is the exchange type. Empty means direct.
	Kind       string
	Queue      string
	RoutingKey string
	// DeadLetterExchange receives messages rejected without requeue.
	DeadLetterExchange string
}

func (b Binding) validate() error {
	if b.Exchange == "" || b.Queue == "" {
		return ErrInvalidBinding
	}
	return nil
}

func (b Binding) kind() string {
	if b.Kind == "" {
		return KindDirect
	}
	return b.Kind
}

func (b Binding) queueArgs() amqp.Table {
	if b.DeadLetterExchange == "" {
		return nil
	}
	return amqp.Table{"x-dead-letter-exchange": b.DeadLetterExchange}
}

type connectionImpl struct {
	url string
	l   log.Logger

	mu         sync.RWMutex
	conn       *amqp.Connection
	closed     bool
	reconnects []chan struct{}
}

type channelImpl struct {
	conn *connectionImpl

	mu sync.RWMutex
	ch *amqp.Channel
}
