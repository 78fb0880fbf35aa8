package consumer

import (
	"context"
	"time"

	pkgRabbitMQ "report-srv/pkg/rabbitmq"
)

type stubConn struct{}

func (stubConn) Channel() (pkgRabbitMQ.IChannel, error) { return nil, nil }
func (stubConn) IsReady() bool                          { return true }
func (stubConn) Close()                                 {}

type stubRedis struct{}

func (stubRedis) SetNX(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}
func (stubRedis) CompareAndDelete(context.Context, string, string) (bool, error) { return true, nil }
func (stubRedis) Ping(context.Context) error                                     { return nil }
func (stubRedis) Close() error                                                   { return nil }
