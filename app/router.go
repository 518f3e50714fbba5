package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// newMessageRouter builds the shared watermill router the modules register
// their handlers on. Middleware order matters: correlation IDs must be
// stamped before retries so redeliveries keep the original ID.
func newMessageRouter(logger *slog.Logger) (*message.Router, error) {
	watermillLogger := watermill.NewSlogLogger(logger)

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			Logger:          watermillLogger,
		}.Middleware,
		middleware.Recoverer,
	)

	return router, nil
}
