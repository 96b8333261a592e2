package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type ActivityKind string

const (
	ActivityReview ActivityKind = "review"
	ActivityPrice  ActivityKind = "price"
	ActivityPhoto  ActivityKind = "photo"
)

// ActivityKinds lists every kind in display order.
var ActivityKinds = []ActivityKind{ActivityReview, ActivityPrice, ActivityPhoto} //nolint:gochecknoglobals

// ParseActivityKind accepts a kind name in any case.
func ParseActivityKind(raw string) (ActivityKind, error) {
	kind := ActivityKind(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(ActivityKinds, kind) {
		return "", fmt.Errorf("unknown activity kind %q", raw)
	}

	return kind, nil
}

// Activity is a user contribution announced to moderators.
type Activity struct {
	Kind       ActivityKind
	ID         string
	VendorID   string
	UserID     string
	Summary    string
	OccurredAt time.Time
}
