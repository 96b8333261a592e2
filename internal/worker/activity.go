package worker

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"berry_buddy/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const TypeActivityCreated = "activity:created"

type activityPayload struct {
	Kind       entity.ActivityKind `json:"kind"`
	ID         string              `json:"id"`
	VendorID   string              `json:"vendor_id"`
	UserID     string              `json:"user_id"`
	Summary    string              `json:"summary"`
	OccurredAt time.Time           `json:"occurred_at"`
}

func NewActivityTask(activity entity.Activity) (*asynq.Task, error) {
	payload, err := json.Marshal(activityPayload{
		Kind:       activity.Kind,
		ID:         activity.ID,
		VendorID:   activity.VendorID,
		UserID:     activity.UserID,
		Summary:    activity.Summary,
		OccurredAt: activity.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeActivityCreated, payload), nil
}

func parseActivityTask(task *asynq.Task) (entity.Activity, error) {
	var p activityPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return entity.Activity{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return entity.Activity{
		Kind:       p.Kind,
		ID:         p.ID,
		VendorID:   p.VendorID,
		UserID:     p.UserID,
		Summary:    p.Summary,
		OccurredAt: p.OccurredAt,
	}, nil
}
