package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"berry_buddy/internal/config"
	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/infrastructure/notifier"
	"berry_buddy/internal/transport/bot"
	"berry_buddy/internal/transport/bot/handler"
	"berry_buddy/internal/worker"
	"berry_buddy/pkg/application/connectors"
	"berry_buddy/pkg/application/modules"
	"berry_buddy/pkg/logx"
	"berry_buddy/pkg/lox"
	"berry_buddy/pkg/probe"
)

const activityBufferSize = 100

type deliveryMode int

const (
	deliveryDisabled deliveryMode = iota
	deliveryQueue
	deliveryInProcess
)

func (m deliveryMode) String() string {
	switch m {
	case deliveryQueue:
		return "queue"
	case deliveryInProcess:
		return "in-process"
	case deliveryDisabled:
		return "disabled"
	}

	return "unknown"
}

type publisher interface {
	Publish(ctx context.Context, activity entity.Activity) error
}

// activityDelivery decides how activities reach the chat: through the Redis
// queue when it is configured, through an in-process channel otherwise.
type activityDelivery struct {
	mode      deliveryMode
	publisher publisher
	filter    *worker.KindFilter
	notifier  *notifier.TelegramBot

	redis      *connectors.Redis
	asynq      *asynq.Client
	dispatcher *worker.Dispatcher
}

func newActivityDelivery(ctx context.Context, cfg config.Config) (*activityDelivery, error) {
	if !cfg.Bot.Enabled() {
		logger(ctx).Warn("BOT_TOKEN or BOT_CHAT_ID is not set, activity notifications are disabled")

		return &activityDelivery{mode: deliveryDisabled, publisher: worker.NopPublisher{}}, nil
	}

	muted, err := lox.MapErr(lo.Compact(cfg.Bot.MutedKinds), entity.ParseActivityKind)
	if err != nil {
		return nil, fmt.Errorf("BOT_MUTED_KINDS: %w", err)
	}

	tgBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
	if err != nil {
		return nil, fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	d := &activityDelivery{
		filter:   worker.NewKindFilter(muted...),
		notifier: tgBot,
	}

	if cfg.Redis.Enabled() {
		d.mode = deliveryQueue
		d.redis = &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		d.asynq = asynq.NewClientFromRedisClient(d.redis.Client(ctx))
		d.publisher = worker.NewQueuePublisher(d.asynq, cfg.Bot.Queue)

		return d, nil
	}

	activities := make(chan entity.Activity, activityBufferSize)

	d.mode = deliveryInProcess
	d.publisher = worker.NewChannelPublisher(activities)
	d.dispatcher = worker.NewDispatcher(tgBot, d.filter, activities)

	return d, nil
}

// run starts the consumers of the configured mode and the moderation bot.
func (d *activityDelivery) run(ctx context.Context, g *errgroup.Group, cfg config.Config) {
	switch d.mode {
	case deliveryDisabled:
		return
	case deliveryQueue:
		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}.Run(ctx, g, modules.AsynqQueues{cfg.Bot.Queue: 1}, modules.AsynqHandler{
			Pattern: worker.TypeActivityCreated,
			Handle:  worker.NewActivityHandler(d.notifier, d.filter).Handle,
		})
	case deliveryInProcess:
		g.Go(func() error {
			if err := d.dispatcher.Start(ctx); err != nil {
				return fmt.Errorf("dispatcher.Start: %w", err)
			}

			<-ctx.Done()
			d.dispatcher.Stop()

			return nil
		})
	}

	if cfg.Bot.AdminID == 0 {
		return
	}

	// Leave the interface nil in queue mode.
	var status handler.DispatcherStatus
	if d.dispatcher != nil {
		status = d.dispatcher
	}

	g.Go(func() error {
		moderation, err := bot.New(cfg.Bot.Token, cfg.Bot.AdminID, handler.New(d.filter, status))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		return moderation.Run(ctx)
	})

	logger(ctx).Info("moderation bot enabled", slog.Int64("admin-id", cfg.Bot.AdminID))
}

func (d *activityDelivery) checks() []probe.Check {
	if d.redis == nil {
		return nil
	}

	return []probe.Check{{Name: "redis", Probe: d.redis.Ping}}
}

func (d *activityDelivery) close(ctx context.Context) {
	if d.asynq != nil {
		if err := d.asynq.Close(); err != nil {
			logger(ctx).Error("asynqClient.Close", logx.Error(err))
		}
	}

	if d.redis != nil {
		d.redis.Close(ctx)
	}
}
