package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/internal/domain"
	"berry_buddy/internal/domain/entity"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM app_profile WHERE id = $1`

	var schema profileSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Profile{}, domain.NewNotFoundError("Profile not found")
		}

		return entity.Profile{}, wrapDBError(err, "failed to get profile")
	}

	return schema.toDomain(), nil
}

// Upsert inserts the profile or overwrites only the provided fields of an
// existing one.
func (r *ProfileRepository) Upsert(ctx context.Context, upsert entity.ProfileUpsert) (entity.Profile, error) {
	columns := []string{"id", "updated_at"}
	args := []any{upsert.ID, upsert.UpdatedAt}

	optional := []struct {
		column string
		value  *string
	}{
		{"email", upsert.Email},
		{"display_name", upsert.DisplayName},
		{"location_city", upsert.LocationCity},
		{"location_state", upsert.LocationState},
	}

	for _, o := range optional {
		if o.value != nil {
			columns = append(columns, o.column)
			args = append(args, *o.value)
		}
	}

	placeholders := lo.Times(len(columns), func(i int) string { return fmt.Sprintf("$%d", i+1) })
	updates := lo.Map(columns[1:], func(c string, _ int) string { return c + " = EXCLUDED." + c })

	query := fmt.Sprintf( //nolint:gosec
		`INSERT INTO app_profile (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s RETURNING %s`,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
		profileColumns,
	)

	var schema profileSchema
	if err := r.db.GetContext(ctx, &schema, query, args...); err != nil {
		return entity.Profile{}, wrapDBError(err, "failed to upsert profile")
	}

	return schema.toDomain(), nil
}

// ListPublic returns the public part of the profiles with the given ids.
func (r *ProfileRepository) ListPublic(ctx context.Context, ids []string) ([]entity.PublicProfile, error) {
	if len(ids) == 0 {
		return []entity.PublicProfile{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, display_name FROM app_profile WHERE id IN (?)`, ids)
	if err != nil {
		return nil, wrapDBError(err, "failed to build profile query")
	}

	var schemas []publicProfileSchema
	if err = r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, wrapDBError(err, "failed to list profiles")
	}

	return lo.Map(schemas, func(s publicProfileSchema, _ int) entity.PublicProfile { return s.toDomain() }), nil
}
