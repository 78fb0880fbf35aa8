package producer

import (
	"report-srv/internal/report"
	"report-srv/pkg/clock"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
)

// Producer publishes report lifecycle events.
type Producer interface {
	report.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	clock    clock.Clock
}

// New creates a new report event producer.
func New(l log.Logger, producer pkgKafka.IProducer, clk clock.Clock) Producer {
	if clk == nil {
		clk = clock.New()
	}
	return &implProducer{
		l:        l,
		producer: producer,
		clock:    clk,
	}
}
