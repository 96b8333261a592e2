package entity

import "time"

type Profile struct {
	ID            string
	Email         *string
	DisplayName   *string
	LocationCity  *string
	LocationState *string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// ProfileUpsert carries only the fields the caller sent.
type ProfileUpsert struct {
	ID            string
	Email         *string
	DisplayName   *string
	LocationCity  *string
	LocationState *string
	UpdatedAt     time.Time
}

type PublicProfile struct {
	ID          string
	DisplayName *string
}
