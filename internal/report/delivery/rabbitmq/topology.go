package rabbitmq

import (
	"fmt"

	pkgRabbitMQ "report-srv/pkg/rabbitmq"
)

// Topology names the exchange and queue generation jobs travel through.
// Jobs the consumer rejects land in DeadLetterQueue when it is set.
type Topology struct {
	Exchange        string
	Queue           string
	RoutingKey      string
	DeadLetterQueue string
}

// Declare creates the durable exchanges, queues and bindings. It is idempotent.
func (t Topology) Declare(ch pkgRabbitMQ.IChannel) error {
	if t.Exchange == "" || t.Queue == "" {
		return fmt.Errorf("rabbitmq topology requires exchange and queue")
	}

	jobs := pkgRabbitMQ.Binding{
		Exchange:   t.Exchange,
		Queue:      t.Queue,
		RoutingKey: t.Key(),
	}
	if t.DeadLetterQueue != "" {
		if err := ch.DeclareBinding(pkgRabbitMQ.Binding{
			Exchange: t.deadLetterExchange(),
			Kind:     pkgRabbitMQ.KindFanout,
			Queue:    t.DeadLetterQueue,
		}); err != nil {
			return err
		}
		jobs.DeadLetterExchange = t.deadLetterExchange()
	}
	return ch.DeclareBinding(jobs)
}

// Key is the routing key jobs are published with. It defaults to the queue name.
func (t Topology) Key() string {
	if t.RoutingKey == "" {
		return t.Queue
	}
	return t.RoutingKey
}

func (t Topology) deadLetterExchange() string {
	return t.Exchange + ".dlx"
}
