// Package handlerwrapper adapts typed, pure transformation handlers to
// watermill. A handler receives a decoded payload and returns the events it
// wants published; the wrapper owns JSON codec, correlation metadata,
// tracing and metrics, so handlers stay free of transport concerns.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/shared/attr"
)

// TopicMetadataKey is the message metadata key the event bus reads to route
// a produced message when the router's publish topic is left empty.
const TopicMetadataKey = "topic"

// Result is one event a handler wants published.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// ReturningMetrics records handler-level outcomes. Implementations must be
// safe for concurrent use; a nil value disables recording.
type ReturningMetrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// WrapTransformingTyped wraps a typed transformation handler into a
// watermill HandlerFunc. The inbound payload is unmarshalled into T; a
// malformed payload is dropped with an error log rather than redelivered
// forever. Returned results are marshalled and stamped with the topic and
// correlation metadata.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics ReturningMetrics,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := msg.Context()

		correlationID := middleware.MessageCorrelationID(msg)
		if correlationID == "" {
			correlationID = watermill.NewUUID()
		}
		ctx = attr.WithCorrelationID(ctx, correlationID)

		ctx, span := tracer.Start(ctx, handlerName)
		defer span.End()

		if metrics != nil {
			metrics.RecordHandlerAttempt(ctx, handlerName)
		}
		start := time.Now()
		defer func() {
			if metrics != nil {
				metrics.RecordHandlerDuration(ctx, handlerName, time.Since(start))
			}
		}()

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			logger.ErrorContext(ctx, "Dropping message with undecodable payload",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			if metrics != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
			}
			// Ack: a payload that cannot decode now will never decode.
			return nil, nil
		}

		handlerResults, err := handler(ctx, &payload)
		if err != nil {
			logger.ErrorContext(ctx, "Handler returned error",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			span.RecordError(err)
			if metrics != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
			}
			return nil, err
		}

		messages := make([]*message.Message, 0, len(handlerResults))
		for _, result := range handlerResults {
			outMsg, err := NewResultMessage(result, correlationID)
			if err != nil {
				if metrics != nil {
					metrics.RecordHandlerFailure(ctx, handlerName)
				}
				return nil, fmt.Errorf("%s: marshal result for topic %s: %w", handlerName, result.Topic, err)
			}
			messages = append(messages, outMsg)
		}

		if metrics != nil {
			metrics.RecordHandlerSuccess(ctx, handlerName)
		}
		return messages, nil
	}
}

// NewResultMessage marshals a Result into a watermill message carrying the
// destination topic and correlation ID in its metadata.
func NewResultMessage(result Result, correlationID string) (*message.Message, error) {
	data, err := json.Marshal(result.Payload)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(TopicMetadataKey, result.Topic)
	middleware.SetCorrelationID(correlationID, msg)
	for k, v := range result.Metadata {
		msg.Metadata.Set(k, v)
	}
	return msg, nil
}
