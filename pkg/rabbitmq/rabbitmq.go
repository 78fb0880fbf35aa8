package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}
	chImpl := &channelImpl{conn: c, ch: ch}
	chImpl.listenReconnect()
	return chImpl, nil
}

func (c *connectionImpl) dial() error {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	for attempt := 1; ; attempt++ {
		c.l.Infof(ctx, "pkg.rabbitmq.dial: Connecting to RabbitMQ, attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			c.listenClose(conn)
			return nil
		}
		c.l.Warnf(ctx, "pkg.rabbitmq.dial: Connection failed: %v", err)

		select {
		case <-ctx.Done():
			return ErrDialTimeout
		case <-time.After(dialRetryDelay):
		}
	}
}

// listenClose redials when the broker drops conn and wakes every channel waiting on it.
func (c *connectionImpl) listenClose(conn *amqp.Connection) {
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		err, ok := <-notifyClose
		if !ok || err == nil {
			return
		}

		c.mu.Lock()
		c.conn = nil
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}

		c.l.Warnf(context.Background(), "pkg.rabbitmq.listenClose: Connection closed: %v", err)
		if err := c.dial(); err != nil {
			c.l.Errorf(context.Background(), "pkg.rabbitmq.listenClose: Reconnect failed: %v", err)
			return
		}

		c.mu.RLock()
		waiters := append([]chan struct{}(nil), c.reconnects...)
		c.mu.RUnlock()
		for _, w := range waiters {
			w <- struct{}{}
		}
	}()
}

func (c *connectionImpl) channel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return nil, amqp.ErrClosed
	}
	return conn.Channel()
}

func (c *connectionImpl) notifyReconnect(receiver chan struct{}) {
	c.mu.Lock()
	c.reconnects = append(c.reconnects, receiver)
	c.mu.Unlock()
}

func (ch *channelImpl) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *channelImpl) DeclareBinding(b Binding) error {
	if err := b.validate(); err != nil {
		return err
	}
	c := ch.current()
	if err := c.ExchangeDeclare(b.Exchange, b.kind(), true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", b.Exchange, err)
	}
	if _, err := c.QueueDeclare(b.Queue, true, false, false, false, b.queueArgs()); err != nil {
		return fmt.Errorf("declare queue %s: %w", b.Queue, err)
	}
	if err := c.QueueBind(b.Queue, b.RoutingKey, b.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s to %s: %w", b.Queue, b.Exchange, err)
	}
	return nil
}

func (ch *channelImpl) Qos(prefetch int) error {
	return ch.current().Qos(prefetch, 0, false)
}

func (ch *channelImpl) Publish(ctx context.Context, exchange, key string, msg Publishing) error {
	return ch.current().PublishWithContext(ctx, exchange, key, false, false, msg)
}

func (ch *channelImpl) Consume(queue, tag string) (<-chan amqp.Delivery, error) {
	return ch.current().Consume(queue, tag, false, false, false, false, nil)
}

func (ch *channelImpl) Close() error {
	return ch.current().Close()
}

func (ch *channelImpl) listenReconnect() {
	wake := make(chan struct{}, 1)
	ch.conn.notifyReconnect(wake)
	go func() {
		for range wake {
			channel, err := ch.conn.channel()
			if err != nil {
				ch.conn.l.Errorf(context.Background(), "pkg.rabbitmq.listenReconnect: Reopen channel failed: %v", err)
				continue
			}
			ch.mu.Lock()
			_ = ch.ch.Close()
			ch.ch = channel
			ch.mu.Unlock()
		}
	}()
}
