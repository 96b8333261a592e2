package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/internal/domain"
	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type VendorRepository struct {
	db *sqlx.DB
}

func NewVendorRepository(db *sqlx.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// List returns one page of vendors ordered by id.
func (r *VendorRepository) List(ctx context.Context, page value.Page) ([]entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor ORDER BY vendor_id LIMIT $1 OFFSET $2`

	var schemas []vendorSchema
	if err := r.db.SelectContext(ctx, &schemas, query, page.Limit, page.Offset); err != nil {
		return nil, wrapDBError(err, "failed to list vendors")
	}

	return lo.Map(schemas, func(s vendorSchema, _ int) entity.Vendor { return s.toDomain() }), nil
}

// ListByIDs returns one page of the vendors whose id is in ids.
func (r *VendorRepository) ListByIDs(ctx context.Context, ids []string, page value.Page) ([]entity.Vendor, error) {
	if len(ids) == 0 {
		return []entity.Vendor{}, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+vendorColumns+` FROM vendor WHERE vendor_id IN (?) ORDER BY vendor_id LIMIT ? OFFSET ?`,
		ids, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, wrapDBError(err, "failed to build vendor query")
	}

	var schemas []vendorSchema
	if err = r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, wrapDBError(err, "failed to list vendors")
	}

	return lo.Map(schemas, func(s vendorSchema, _ int) entity.Vendor { return s.toDomain() }), nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor WHERE vendor_id = $1`

	var schema vendorSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Vendor not found")
		}

		return nil, wrapDBError(err, "failed to get vendor")
	}

	return lo.ToPtr(schema.toDomain()), nil
}
