package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type BerryRepository struct {
	db *sqlx.DB
}

func NewBerryRepository(db *sqlx.DB) *BerryRepository {
	return &BerryRepository{db: db}
}

func (r *BerryRepository) List(ctx context.Context, page value.Page) ([]entity.Berry, error) {
	query := `SELECT ` + berryColumns + ` FROM berry ORDER BY berry_name, berry_id LIMIT $1 OFFSET $2`

	var schemas []berrySchema
	if err := r.db.SelectContext(ctx, &schemas, query, page.Limit, page.Offset); err != nil {
		return nil, wrapDBError(err, "failed to list berries")
	}

	return lo.Map(schemas, func(s berrySchema, _ int) entity.Berry { return s.toDomain() }), nil
}
