package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockProducer(t *testing.T) (*producerImpl, *mocks.SyncProducer) {
	t.Helper()
	cfg := Config{Topic: "report.events"}.saramaConfig()
	mock := mocks.NewSyncProducer(t, cfg)
	return &producerImpl{producer: mock, topic: "report.events"}, mock
}

func TestNewProducerValidates(t *testing.T) {
	_, err := NewProducer(Config{Topic: "t"})
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewProducer(Config{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrTopicRequired)
}

func TestPublish(t *testing.T) {
	p, mock := newMockProducer(t)
	mock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, _ := msg.Key.Encode()
		if string(key) != "r-1" {
			return errors.New("unexpected key " + string(key))
		}
		if len(msg.Headers) != 2 || string(msg.Headers[0].Key) != "a" || string(msg.Headers[1].Key) != "event_type" {
			return errors.New("headers not sorted")
		}
		return nil
	})

	_, err := p.Publish(context.Background(), Message{
		Key:     "r-1",
		Value:   []byte(`{}`),
		Headers: map[string]string{"event_type": "report.generated", "a": "b"},
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublishFailures(t *testing.T) {
	p, mock := newMockProducer(t)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	_, err := p.Publish(context.Background(), Message{Value: []byte("x")})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Publish(ctx, Message{Value: []byte("x")})
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	_, err = p.Publish(context.Background(), Message{Value: []byte("x")})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, p.HealthCheck(), ErrClosed)
}
