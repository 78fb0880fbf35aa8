package producer

import (
	"fmt"

	"report-srv/internal/report"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
	"report-srv/pkg/clock"
	"report-srv/pkg/log"
	pkgRabbitMQ "report-srv/pkg/rabbitmq"
)

// Producer enqueues report generation jobs.
type Producer interface {
	report.JobQueue
	Close() error
}

type implProducer struct {
	l        log.Logger
	ch       pkgRabbitMQ.IChannel
	topology rabbitDelivery.Topology
	clock    clock.Clock
}

// New opens a channel on conn and declares the job topology.
func New(l log.Logger, conn pkgRabbitMQ.IRabbitMQ, topology rabbitDelivery.Topology, clk clock.Clock) (Producer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := topology.Declare(ch); err != nil {
		_ = ch.Close()
		return nil, err
	}
	if clk == nil {
		clk = clock.New()
	}

	return &implProducer{
		l:        l,
		ch:       ch,
		topology: topology,
		clock:    clk,
	}, nil
}

func (p *implProducer) Close() error {
	return p.ch.Close()
}
