package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/logx"
)

const (
	activityMaxRetry = 3
	activityTimeout  = 30 * time.Second
)

var ErrQueueFull = errors.New("activity queue is full")

//go:generate moq -rm -out mocks_moq_test.go -pkg worker_test . Enqueuer Notifier
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuePublisher hands activities to the asynq queue.
type QueuePublisher struct {
	client Enqueuer
	queue  string
}

func NewQueuePublisher(client Enqueuer, queue string) *QueuePublisher {
	return &QueuePublisher{
		client: client,
		queue:  queue,
	}
}

func (p *QueuePublisher) Publish(ctx context.Context, activity entity.Activity) error {
	task, err := NewActivityTask(activity)
	if err != nil {
		return fmt.Errorf("NewActivityTask: %w", err)
	}

	info, err := p.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(p.queue),
		asynq.MaxRetry(activityMaxRetry),
		asynq.Timeout(activityTimeout),
	)
	if err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug(
		"activity enqueued",
		slog.String(logx.FieldTaskID, info.ID),
		slog.String(logx.FieldTaskType, task.Type()),
	)

	return nil
}

// ChannelPublisher feeds an in-process Dispatcher. It never blocks: when
// the buffer is full the activity is dropped with ErrQueueFull.
type ChannelPublisher struct {
	activities chan<- entity.Activity
}

func NewChannelPublisher(activities chan<- entity.Activity) *ChannelPublisher {
	return &ChannelPublisher{activities: activities}
}

func (p *ChannelPublisher) Publish(_ context.Context, activity entity.Activity) error {
	select {
	case p.activities <- activity:
		return nil
	default:
		return ErrQueueFull
	}
}

// NopPublisher is used when no notification channel is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.Activity) error {
	return nil
}
