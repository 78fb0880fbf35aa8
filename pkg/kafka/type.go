package kafka

import (
	"sync"
	"time"

	"github.com/IBM/sarama"
)

const (
	defaultClientID = "report-srv"
	defaultTimeout  = 10 * time.Second
	defaultRetries  = 3
)

// Config holds configuration for the producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
	// Timeout bounds one produce request. Zero means 10s.
	Timeout time.Duration
}

func (c Config) saramaConfig() *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = c.ClientID
	if sc.ClientID == "" {
		sc.ClientID = defaultClientID
	}
	sc.Version = sarama.V2_6_0_0
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = defaultRetries
	sc.Producer.Timeout = c.Timeout
	if sc.Producer.Timeout <= 0 {
		sc.Producer.Timeout = defaultTimeout
	}
	return sc
}

// Message is one record on the producer's topic. Records with the same Key land on the same partition.
type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

// Delivery is where the broker stored a message.
type Delivery struct {
	Partition int32
	Offset    int64
}

type producerImpl struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string

	mu     sync.RWMutex
	closed bool
}
