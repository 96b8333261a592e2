package server

import (
	"net/http"
	"time"

	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/rest"
)

type HealthServer struct {
	now func() time.Time
}

func NewHealthServer(now func() time.Time) HealthServer {
	if now == nil {
		now = time.Now
	}

	return HealthServer{now: now}
}

func (s HealthServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{OK: true, Now: s.now().UTC()})

	return nil
}
