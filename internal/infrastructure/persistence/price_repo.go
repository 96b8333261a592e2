package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type PriceRepository struct {
	db *sqlx.DB
}

func NewPriceRepository(db *sqlx.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// VendorIDsByBerry returns the vendor id of every price report for the berry,
// duplicates included.
func (r *PriceRepository) VendorIDsByBerry(ctx context.Context, berryID string) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT vendor_id FROM price WHERE berry_id = $1`, berryID); err != nil {
		return nil, wrapDBError(err, "failed to list vendors by berry")
	}

	return ids, nil
}

func (r *PriceRepository) FactsByVendors(ctx context.Context, vendorIDs []string) ([]entity.PriceFact, error) {
	if len(vendorIDs) == 0 {
		return []entity.PriceFact{}, nil
	}

	query, args, err := sqlx.In(`SELECT vendor_id, reported_at FROM price WHERE vendor_id IN (?)`, vendorIDs)
	if err != nil {
		return nil, wrapDBError(err, "failed to build price query")
	}

	var schemas []priceFactSchema
	if err = r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, wrapDBError(err, "failed to list price facts")
	}

	return lo.Map(schemas, func(s priceFactSchema, _ int) entity.PriceFact { return s.toDomain() }), nil
}

func (r *PriceRepository) RecentFactsByVendor(ctx context.Context, vendorID string, limit int) ([]entity.PriceFact, error) {
	query := `
		SELECT vendor_id, reported_at
		FROM price
		WHERE vendor_id = $1
		ORDER BY reported_at DESC
		LIMIT $2`

	var schemas []priceFactSchema
	if err := r.db.SelectContext(ctx, &schemas, query, vendorID, limit); err != nil {
		return nil, wrapDBError(err, "failed to list price facts")
	}

	return lo.Map(schemas, func(s priceFactSchema, _ int) entity.PriceFact { return s.toDomain() }), nil
}

// List returns one page of price reports, newest first.
func (r *PriceRepository) List(ctx context.Context, page value.Page) ([]entity.Price, error) {
	query := `SELECT ` + priceColumns + ` FROM price ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var schemas []priceSchema
	if err := r.db.SelectContext(ctx, &schemas, query, page.Limit, page.Offset); err != nil {
		return nil, wrapDBError(err, "failed to list prices")
	}

	return lo.Map(schemas, func(s priceSchema, _ int) entity.Price { return s.toDomain() }), nil
}

func (r *PriceRepository) Create(ctx context.Context, price entity.Price) (entity.Price, error) {
	query, args, err := sqlx.Named(`
		INSERT INTO price (vendor_id, berry_id, price_per_unit, unit_type, reported_at, reported_by)
		VALUES (:vendor_id, :berry_id, :price_per_unit, :unit_type, :reported_at, :reported_by)
		RETURNING `+priceColumns,
		priceSchema{
			VendorID:     price.VendorID,
			BerryID:      price.BerryID,
			PricePerUnit: price.PricePerUnit,
			UnitType:     price.UnitType,
			ReportedAt:   price.ReportedAt,
			ReportedBy:   price.ReportedBy,
		},
	)
	if err != nil {
		return entity.Price{}, wrapDBError(err, "failed to build price insert")
	}

	var schema priceSchema
	if err = r.db.GetContext(ctx, &schema, r.db.Rebind(query), args...); err != nil {
		return entity.Price{}, wrapDBError(err, "failed to create price")
	}

	return schema.toDomain(), nil
}

func (r *PriceRepository) Update(ctx context.Context, id, owner string, upd entity.PriceUpdate) (entity.Price, error) {
	var a assignments

	set(&a, "price_per_unit", upd.PricePerUnit)
	set(&a, "unit_type", upd.UnitType)
	set(&a, "reported_at", upd.ReportedAt)

	var schema priceSchema

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwned(ctx, tx, "price", "price_id", "reported_by", id, owner); err != nil {
			return err
		}

		query, args := `SELECT `+priceColumns+` FROM price WHERE price_id = $1`, []any{id}
		if !a.empty() {
			query, args = a.update("price", "price_id", id, priceColumns)
		}

		if err := tx.GetContext(ctx, &schema, query, args...); err != nil {
			return wrapDBError(err, "failed to update price")
		}

		return nil
	})
	if err != nil {
		return entity.Price{}, err
	}

	return schema.toDomain(), nil
}

func (r *PriceRepository) Delete(ctx context.Context, id, owner string) (entity.Price, error) {
	var schema priceSchema

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwned(ctx, tx, "price", "price_id", "reported_by", id, owner); err != nil {
			return err
		}

		query := `DELETE FROM price WHERE price_id = $1 RETURNING ` + priceColumns
		if err := tx.GetContext(ctx, &schema, query, id); err != nil {
			return wrapDBError(err, "failed to delete price")
		}

		return nil
	})
	if err != nil {
		return entity.Price{}, err
	}

	return schema.toDomain(), nil
}
