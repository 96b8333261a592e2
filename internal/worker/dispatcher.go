package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/logx"
)

const defaultRequestInterval = time.Second

var ErrAlreadyRunning = errors.New("dispatcher is already running")

// Dispatcher delivers activities from an in-process channel when no queue is
// configured. Deliveries are paced so the chat API rate limit is respected.
type Dispatcher struct {
	notifier   Notifier
	filter     *KindFilter
	activities <-chan entity.Activity

	requestInterval time.Duration
	lastRequest     time.Time

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewDispatcher(notifier Notifier, filter *KindFilter, activities <-chan entity.Activity) *Dispatcher {
	return &Dispatcher{
		notifier:        notifier,
		filter:          filter,
		activities:      activities,
		requestInterval: defaultRequestInterval,
	}
}

// WithRateControl sets the minimal gap between two deliveries.
func (d *Dispatcher) WithRateControl(interval time.Duration) *Dispatcher {
	d.requestInterval = interval
	return d
}

func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isRunning {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancelFunc = cancel
	d.isRunning = true

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		defer func() {
			d.mu.Lock()
			d.isRunning = false
			d.cancelFunc = nil
			d.mu.Unlock()
		}()

		if err := d.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("dispatcher stopped", logx.Error(err))
		}
	}()

	return nil
}

// Stop cancels a started dispatcher and waits for it to return.
func (d *Dispatcher) Stop() {
	d.mu.Lock()

	if !d.isRunning {
		d.mu.Unlock()
		return
	}

	if d.cancelFunc != nil {
		d.cancelFunc()
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.isRunning
}

// Run delivers until ctx is done or the channel is closed.
func (d *Dispatcher) Run(ctx context.Context) error {
	logger(ctx).Info("activity dispatcher started")

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("activity dispatcher stopped")
			return ctx.Err()
		case activity, ok := <-d.activities:
			if !ok {
				return nil
			}

			if err := d.deliver(ctx, activity); err != nil {
				return err
			}
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, activity entity.Activity) error {
	if !d.filter.Allows(activity.Kind) {
		return nil
	}

	if err := d.waitForNextSlot(ctx); err != nil {
		return err
	}

	if err := d.notifier.NotifyActivity(ctx, activity); err != nil {
		logger(ctx).Error(
			"notifier.NotifyActivity",
			slog.String("kind", string(activity.Kind)),
			slog.String(logx.FieldVendorID, activity.VendorID),
			logx.Error(err),
		)
	}

	return nil
}

func (d *Dispatcher) waitForNextSlot(ctx context.Context) error {
	if d.lastRequest.IsZero() {
		d.lastRequest = time.Now()
		return nil
	}

	elapsed := time.Since(d.lastRequest)
	if elapsed >= d.requestInterval {
		d.lastRequest = time.Now()
		return nil
	}

	select {
	case <-time.After(d.requestInterval - elapsed):
		d.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
