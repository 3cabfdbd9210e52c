package eventbus

import (
	"context"

	"github.com/grachmannico95/codes-bot/pkg/logger"
)

// Notifier delivers a message to a user out of band of the request that
// triggered it.
type Notifier interface {
	Notify(ctx context.Context, userID, message string) error
}

// LogNotifier records notifications in the structured log. The HTTP
// transport has no push channel back to the user.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, userID, message string) error {
	n.logger.Info(logger.WithUserID(ctx, userID), "User notification",
		"message", message,
	)
	return nil
}
