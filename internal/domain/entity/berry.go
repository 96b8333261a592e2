package entity

import "time"

type Berry struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}
