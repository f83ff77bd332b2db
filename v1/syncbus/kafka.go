package syncbus

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	sarama "github.com/IBM/sarama"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

const kafkaTopicPrefix = "mutex-"

// KafkaTopic returns the topic carrying the events of key. Characters
// Kafka does not accept in topic names are replaced with '_'.
func KafkaTopic(key string) string {
	return kafkaTopicPrefix + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, key)
}

// KafkaBus implements Bus using a Kafka backend, one topic per key.
type KafkaBus struct {
	subscribers
	producer sarama.SyncProducer
	consumer sarama.Consumer
	closed   atomic.Bool

	pcMu sync.Mutex
	pcs  map[string]sarama.PartitionConsumer
}

// NewKafkaBus creates a new KafkaBus connecting to the given brokers.
func NewKafkaBus(brokers []string, cfg *sarama.Config) (*KafkaBus, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.Return.Successes = true
	client, err := sarama.NewClient(brokers, cfg)
	if err != nil {
		return nil, err
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		_ = producer.Close()
		_ = client.Close()
		return nil, err
	}
	return newKafkaBus(producer, consumer), nil
}

func newKafkaBus(producer sarama.SyncProducer, consumer sarama.Consumer) *KafkaBus {
	b := &KafkaBus{
		producer: producer,
		consumer: consumer,
		pcs:      make(map[string]sarama.PartitionConsumer),
	}
	b.init()
	return b
}

// Publish implements Bus.Publish.
func (b *KafkaBus) Publish(ctx context.Context, ev Event) error {
	if b.closed.Load() {
		return muterrors.ErrConnectionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: KafkaTopic(ev.Key),
		Key:   sarama.StringEncoder(ev.Key),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := b.producer.SendMessage(msg); err != nil {
		return err
	}
	b.published.Add(1)
	return nil
}

// Subscribe implements Bus.Subscribe. Only events produced after the call
// are delivered.
func (b *KafkaBus) Subscribe(ctx context.Context, key string) (<-chan Event, error) {
	if b.closed.Load() {
		return nil, muterrors.ErrConnectionClosed
	}
	b.pcMu.Lock()
	defer b.pcMu.Unlock()
	ch := b.add(key)
	if _, ok := b.pcs[key]; !ok {
		pc, err := b.consumer.ConsumePartition(KafkaTopic(key), 0, sarama.OffsetNewest)
		if err != nil {
			b.remove(key, ch)
			return nil, err
		}
		b.pcs[key] = pc
		go b.dispatch(pc)
	}
	unsubscribeOnDone(ctx, b, key, ch)
	return ch, nil
}

func (b *KafkaBus) dispatch(pc sarama.PartitionConsumer) {
	for msg := range pc.Messages() {
		ev, err := decodeEvent(msg.Value)
		if err != nil {
			slog.Warn("mutex: dropping malformed kafka event", "topic", msg.Topic, "error", err)
			continue
		}
		b.deliver(ev)
	}
}

// Unsubscribe implements Bus.Unsubscribe.
func (b *KafkaBus) Unsubscribe(ctx context.Context, key string, ch <-chan Event) error {
	b.pcMu.Lock()
	defer b.pcMu.Unlock()
	if !b.remove(key, ch) {
		return nil
	}
	pc, ok := b.pcs[key]
	if !ok {
		return nil
	}
	delete(b.pcs, key)
	return pc.Close()
}

// Metrics returns the published and delivered counts.
func (b *KafkaBus) Metrics() Metrics {
	return b.metrics()
}

// Close releases resources used by the KafkaBus.
func (b *KafkaBus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return muterrors.ErrConnectionClosed
	}
	b.pcMu.Lock()
	for key, pc := range b.pcs {
		_ = pc.Close()
		delete(b.pcs, key)
	}
	b.pcMu.Unlock()
	b.closeAll()
	if err := b.producer.Close(); err != nil {
		_ = b.consumer.Close()
		return err
	}
	return b.consumer.Close()
}
