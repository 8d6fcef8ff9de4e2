package notifications

import (
	"context"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
)

// Notification is one toast surfaced to the customer.
type Notification struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Severity    enums.NotificationSeverity `json:"severity"`
}

// Notifier accepts notifications; the storefront owns their rendering.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the structured log. It stands in for
// the storefront toast sink in workers and tests.
type LogNotifier struct {
	logg *logger.Logger
}

// NewLogNotifier wires the log-backed notifier.
func NewLogNotifier(logg *logger.Logger) (*LogNotifier, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &LogNotifier{logg: logg}, nil
}

// Notify logs the notification at a level matching its severity.
func (n *LogNotifier) Notify(ctx context.Context, notification Notification) {
	ctx = n.logg.WithFields(ctx, map[string]any{
		"title":       notification.Title,
		"description": notification.Description,
		"severity":    string(notification.Severity),
	})
	if notification.Severity == enums.NotificationSeverityDestructive {
		n.logg.Warn(ctx, "notification")
		return
	}
	n.logg.Info(ctx, "notification")
}
