// Package eventbus provides the NATS JetStream event bus used by the
// watermill router. It satisfies message.Publisher and message.Subscriber,
// with one twist: handlers produce messages whose destination topic lives
// in metadata, so Publish resolves the real topic from metadata when the
// router hands it an empty one.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// EventBus is the transport used by the router and the scheduler workers.
type EventBus interface {
	message.Publisher
	message.Subscriber
	EnsureStream(ctx context.Context, streamName string, subjects []string) error
}

type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	js         jetstream.JetStream
	natsConn   *nc.Conn
	logger     *slog.Logger

	streamMu       sync.Mutex
	ensuredStreams map[string]bool
}

// New connects to NATS and builds the JetStream-backed bus.
func New(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaller := &wmnats.NATSMarshaler{}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
			AckWaitTimeout: 30 * time.Second,
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing publisher during setup failure", attr.Error(cerr))
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		subscriber:     subscriber,
		js:             js,
		natsConn:       natsConn,
		logger:         logger,
		ensuredStreams: make(map[string]bool),
	}, nil
}

// Publish routes each message to topic, or to the topic carried in the
// message's metadata when topic is empty. Handlers registered with an empty
// publish topic rely on the metadata path.
func (eb *eventBus) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		destination := topic
		if destination == "" {
			destination = msg.Metadata.Get(handlerwrapper.TopicMetadataKey)
		}
		if destination == "" {
			return fmt.Errorf("message %s has no destination topic", msg.UUID)
		}

		if err := eb.publisher.Publish(destination, msg); err != nil {
			return fmt.Errorf("publish to %s: %w", destination, err)
		}

		eb.logger.Debug("Published message",
			attr.String("topic", destination),
			attr.String("message_id", msg.UUID),
		)
	}
	return nil
}

func (eb *eventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return eb.subscriber.Subscribe(ctx, topic)
}

// EnsureStream creates the stream if missing, or extends its subject set.
// Idempotent per process.
func (eb *eventBus) EnsureStream(ctx context.Context, streamName string, subjects []string) error {
	eb.streamMu.Lock()
	defer eb.streamMu.Unlock()

	if eb.ensuredStreams[streamName] {
		return nil
	}

	stream, err := eb.js.Stream(ctx, streamName)
	if err != nil && err != jetstream.ErrStreamNotFound {
		return fmt.Errorf("failed to check stream %s: %w", streamName, err)
	}

	if err == jetstream.ErrStreamNotFound {
		if _, err := eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: subjects,
		}); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}
		eb.logger.Info("Stream created",
			attr.String("stream", streamName),
			attr.Int("subjects", len(subjects)),
		)
	} else {
		info, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stream info for %s: %w", streamName, err)
		}

		existing := make(map[string]bool, len(info.Config.Subjects))
		for _, s := range info.Config.Subjects {
			existing[s] = true
		}
		changed := false
		for _, s := range subjects {
			if !existing[s] {
				info.Config.Subjects = append(info.Config.Subjects, s)
				changed = true
			}
		}
		if changed {
			if _, err := eb.js.UpdateStream(ctx, info.Config); err != nil {
				return fmt.Errorf("failed to update stream %s: %w", streamName, err)
			}
			eb.logger.Info("Stream subjects extended", attr.String("stream", streamName))
		}
	}

	eb.ensuredStreams[streamName] = true
	return nil
}

func (eb *eventBus) Close() error {
	if err := eb.publisher.Close(); err != nil {
		eb.logger.Error("Error closing publisher", attr.Error(err))
	}
	if err := eb.subscriber.Close(); err != nil {
		eb.logger.Error("Error closing subscriber", attr.Error(err))
	}
	eb.natsConn.Close()
	return nil
}
