package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FactsByVendors returns rating facts of every review of the given vendors.
func (r *ReviewRepository) FactsByVendors(ctx context.Context, vendorIDs []string) ([]entity.ReviewFact, error) {
	if len(vendorIDs) == 0 {
		return []entity.ReviewFact{}, nil
	}

	query, args, err := sqlx.In(`SELECT vendor_id, rating, created_at FROM review WHERE vendor_id IN (?)`, vendorIDs)
	if err != nil {
		return nil, wrapDBError(err, "failed to build review query")
	}

	var schemas []reviewFactSchema
	if err = r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, wrapDBError(err, "failed to list review facts")
	}

	return lo.Map(schemas, func(s reviewFactSchema, _ int) entity.ReviewFact { return s.toDomain() }), nil
}

// RecentFactsByVendor returns rating facts of the newest limit reviews.
func (r *ReviewRepository) RecentFactsByVendor(ctx context.Context, vendorID string, limit int) ([]entity.ReviewFact, error) {
	query := `
		SELECT vendor_id, rating, created_at
		FROM review
		WHERE vendor_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var schemas []reviewFactSchema
	if err := r.db.SelectContext(ctx, &schemas, query, vendorID, limit); err != nil {
		return nil, wrapDBError(err, "failed to list review facts")
	}

	return lo.Map(schemas, func(s reviewFactSchema, _ int) entity.ReviewFact { return s.toDomain() }), nil
}

func (r *ReviewRepository) RecentByVendor(ctx context.Context, vendorID string, limit int) ([]entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM review WHERE vendor_id = $1 ORDER BY created_at DESC LIMIT $2`

	var schemas []reviewSchema
	if err := r.db.SelectContext(ctx, &schemas, query, vendorID, limit); err != nil {
		return nil, wrapDBError(err, "failed to list reviews")
	}

	return lo.Map(schemas, func(s reviewSchema, _ int) entity.Review { return s.toDomain() }), nil
}

// List returns one page of reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context, page value.Page) ([]entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM review ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var schemas []reviewSchema
	if err := r.db.SelectContext(ctx, &schemas, query, page.Limit, page.Offset); err != nil {
		return nil, wrapDBError(err, "failed to list reviews")
	}

	return lo.Map(schemas, func(s reviewSchema, _ int) entity.Review { return s.toDomain() }), nil
}

func (r *ReviewRepository) Create(ctx context.Context, review entity.Review) (entity.Review, error) {
	query, args, err := sqlx.Named(`
		INSERT INTO review (
			vendor_id, berry_id, rating, quality_rating, freshness_rating,
			value_rating, review_text, visited_date, reported_by
		) VALUES (
			:vendor_id, :berry_id, :rating, :quality_rating, :freshness_rating,
			:value_rating, :review_text, :visited_date, :reported_by
		)
		RETURNING `+reviewColumns,
		reviewSchema{
			VendorID:        review.VendorID,
			BerryID:         review.BerryID,
			Rating:          review.Rating,
			QualityRating:   review.QualityRating,
			FreshnessRating: review.FreshnessRating,
			ValueRating:     review.ValueRating,
			ReviewText:      review.ReviewText,
			VisitedDate:     review.VisitedDate,
			ReportedBy:      review.ReportedBy,
		},
	)
	if err != nil {
		return entity.Review{}, wrapDBError(err, "failed to build review insert")
	}

	var schema reviewSchema
	if err = r.db.GetContext(ctx, &schema, r.db.Rebind(query), args...); err != nil {
		return entity.Review{}, wrapDBError(err, "failed to create review")
	}

	return schema.toDomain(), nil
}

// Update changes the given fields of a review owned by owner.
func (r *ReviewRepository) Update(ctx context.Context, id, owner string, upd entity.ReviewUpdate) (entity.Review, error) {
	var a assignments

	set(&a, "rating", upd.Rating)
	set(&a, "quality_rating", upd.QualityRating)
	set(&a, "freshness_rating", upd.FreshnessRating)
	set(&a, "value_rating", upd.ValueRating)
	set(&a, "review_text", upd.ReviewText)
	set(&a, "visited_date", upd.VisitedDate)

	var schema reviewSchema

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwned(ctx, tx, "review", "review_id", "reported_by", id, owner); err != nil {
			return err
		}

		query, args := `SELECT `+reviewColumns+` FROM review WHERE review_id = $1`, []any{id}
		if !a.empty() {
			query, args = a.update("review", "review_id", id, reviewColumns)
		}

		if err := tx.GetContext(ctx, &schema, query, args...); err != nil {
			return wrapDBError(err, "failed to update review")
		}

		return nil
	})
	if err != nil {
		return entity.Review{}, err
	}

	return schema.toDomain(), nil
}

// Delete removes a review owned by owner and returns it.
func (r *ReviewRepository) Delete(ctx context.Context, id, owner string) (entity.Review, error) {
	var schema reviewSchema

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwned(ctx, tx, "review", "review_id", "reported_by", id, owner); err != nil {
			return err
		}

		query := `DELETE FROM review WHERE review_id = $1 RETURNING ` + reviewColumns
		if err := tx.GetContext(ctx, &schema, query, id); err != nil {
			return wrapDBError(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		return entity.Review{}, err
	}

	return schema.toDomain(), nil
}
