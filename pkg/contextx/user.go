package contextx

import (
	"context"
	"fmt"
)

type UserID string

func (u UserID) String() string {
	return string(u)
}

// User is the caller resolved from a bearer token.
type User struct {
	ID    UserID
	Email string
}

type contextKeyUser struct{}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKeyUser{}, user)
}

func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(contextKeyUser{}).(User)
	if !ok || user.ID == "" {
		return User{}, fmt.Errorf("user: %w", ErrNoValue)
	}

	return user, nil
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	user, err := UserFromContext(ctx)
	if err != nil {
		return "", err
	}

	return user.ID, nil
}
