package handler

import (
	"berry_buddy/internal/worker"
)

// DispatcherStatus is implemented by the in-process dispatcher; nil when
// activities go through the queue.
type DispatcherStatus interface {
	IsRunning() bool
}

type Handler struct {
	filter     *worker.KindFilter
	dispatcher DispatcherStatus
}

func New(filter *worker.KindFilter, dispatcher DispatcherStatus) *Handler {
	return &Handler{
		filter:     filter,
		dispatcher: dispatcher,
	}
}
