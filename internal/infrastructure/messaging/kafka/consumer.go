package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/molcraft/molcraft/internal/config"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/pkg/errors"
)

// EventHandler processes one validation event.  Returning an error leaves
// the message uncommitted so it is redelivered.
type EventHandler func(ctx context.Context, event ValidationEvent) error

// readerInterface abstracts kafka.Reader for testing.
type readerInterface interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads validation events as part of a consumer group.
type Consumer struct {
	reader readerInterface
	logger logging.Logger
}

// NewConsumer builds a group consumer for the configured topic.
func NewConsumer(cfg config.KafkaConfig, log logging.Logger) *Consumer {
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   topic,
		GroupID: cfg.GroupID,
	})
	return &Consumer{reader: reader, logger: log.Named("kafka_consumer")}
}

func newConsumerWithReader(r readerInterface, log logging.Logger) *Consumer {
	return &Consumer{reader: r, logger: log}
}

// Run fetches messages until ctx is cancelled, invoking handler for each
// decoded event.  Undecodable messages are committed and skipped; they would
// otherwise poison the partition.
func (c *Consumer) Run(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, errors.ErrCodeMessageQueueError, "failed to fetch message")
		}

		var event ValidationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Warn("skipping malformed validation event",
				logging.Int("partition", msg.Partition),
				logging.Int("offset", int(msg.Offset)),
				logging.Err(err))
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return errors.Wrap(err, errors.ErrCodeMessageQueueError, "failed to commit message")
			}
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.logger.Error("event handler failed",
				logging.String("event_id", event.EventID), logging.Err(err))
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return errors.Wrap(err, errors.ErrCodeMessageQueueError, "failed to commit message")
		}
	}
}

// Close shuts down the reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
