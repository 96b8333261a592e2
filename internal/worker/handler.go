package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/logx"
)

type Notifier interface {
	NotifyActivity(ctx context.Context, activity entity.Activity) error
}

// ActivityHandler processes activity:created tasks.
type ActivityHandler struct {
	notifier Notifier
	filter   *KindFilter
}

func NewActivityHandler(notifier Notifier, filter *KindFilter) *ActivityHandler {
	return &ActivityHandler{
		notifier: notifier,
		filter:   filter,
	}
}

func (h *ActivityHandler) Handle(ctx context.Context, task *asynq.Task) error {
	activity, err := parseActivityTask(task)
	if err != nil {
		return fmt.Errorf("parseActivityTask: %w: %w", err, asynq.SkipRetry)
	}

	if !h.filter.Allows(activity.Kind) {
		logger(ctx).Debug("activity muted", slog.String("kind", string(activity.Kind)))

		return nil
	}

	if err = h.notifier.NotifyActivity(ctx, activity); err != nil {
		return fmt.Errorf("notifier.NotifyActivity: %w", err)
	}

	logger(ctx).Info(
		"activity delivered",
		slog.String("kind", string(activity.Kind)),
		slog.String(logx.FieldVendorID, activity.VendorID),
	)

	return nil
}
