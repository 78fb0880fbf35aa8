package kafka

import (
	"context"
	"fmt"
	"slices"

	"github.com/IBM/sarama"
)

func (p *producerImpl) Publish(ctx context.Context, msg Message) (Delivery, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return Delivery{}, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return Delivery{}, err
	}

	partition, offset, err := p.producer.SendMessage(p.record(msg))
	if err != nil {
		return Delivery{}, fmt.Errorf("kafka: publish to %s: %w", p.topic, err)
	}
	return Delivery{Partition: partition, Offset: offset}, nil
}

func (p *producerImpl) HealthCheck() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	if p.client == nil {
		return nil
	}
	if err := p.client.RefreshMetadata(p.topic); err != nil {
		return fmt.Errorf("kafka: refresh metadata for %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes the producer, then releases the client. Safe to call twice.
func (p *producerImpl) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.producer.Close()
	if p.client != nil && !p.client.Closed() {
		if cerr := p.client.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// record builds the producer message with headers in key order so records are reproducible.
func (p *producerImpl) record(msg Message) *sarama.ProducerMessage {
	rec := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(msg.Value)}
	if msg.Key != "" {
		rec.Key = sarama.StringEncoder(msg.Key)
	}

	keys := make([]string, 0, len(msg.Headers))
	for k := range msg.Headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		rec.Headers = append(rec.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(msg.Headers[k])})
	}
	return rec
}
