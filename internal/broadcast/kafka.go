package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"clubhub/internal/platform/config"
)

// KafkaChannel carries role-change events over a Kafka topic for
// deployments where server instances don't share a Redis. Each instance
// consumes with its own group ID so every instance sees every event.
type KafkaChannel struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[int]func(RoleChange)
	nextSubID   int
}

func NewKafkaChannel(cfg config.KafkaConfig, logger *slog.Logger) (*KafkaChannel, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.GroupID == "" {
		return nil, errors.New("kafka group id is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumerGroup(cfg.GroupID),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	if err := ensureTopic(context.Background(), client, cfg.Topic); err != nil {
		client.Close()
		return nil, err
	}

	return &KafkaChannel{
		client:      client,
		topic:       cfg.Topic,
		logger:      logger,
		subscribers: make(map[int]func(RoleChange)),
	}, nil
}

func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	topics, err := adm.ListTopics(ctx)
	if err != nil {
		return fmt.Errorf("list kafka topics: %w", err)
	}
	if topics.Has(topic) {
		return nil
	}
	if _, err := adm.CreateTopic(ctx, 1, 1, nil, topic); err != nil {
		return fmt.Errorf("create kafka topic %q: %w", topic, err)
	}
	return nil
}

func (c *KafkaChannel) Publish(ctx context.Context, change RoleChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic: c.topic,
		Key:   []byte(change.UserID),
		Value: payload,
	}
	return c.client.ProduceSync(ctx, record).FirstErr()
}

func (c *KafkaChannel) Subscribe(fn func(RoleChange)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// Run consumes the topic and fans events out to subscribers until the
// context is canceled.
func (c *KafkaChannel) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return ctx.Err()
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Warn("kafka fetch error",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		})
		fetches.EachRecord(func(record *kgo.Record) {
			var change RoleChange
			if err := json.Unmarshal(record.Value, &change); err != nil {
				c.logger.Warn("dropping malformed role-change record",
					"topic", record.Topic,
					"error", err,
				)
				return
			}
			c.deliver(change)
		})
	}
}

func (c *KafkaChannel) deliver(change RoleChange) {
	c.mu.Lock()
	fns := make([]func(RoleChange), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}

// Close releases the underlying Kafka client.
func (c *KafkaChannel) Close() {
	c.client.Close()
}
