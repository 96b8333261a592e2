package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type PhotoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) RecentByVendor(ctx context.Context, vendorID string, limit int) ([]entity.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photo WHERE vendor_id = $1 ORDER BY uploaded_at DESC LIMIT $2`

	var schemas []photoSchema
	if err := r.db.SelectContext(ctx, &schemas, query, vendorID, limit); err != nil {
		return nil, wrapDBError(err, "failed to list photos")
	}

	return lo.Map(schemas, func(s photoSchema, _ int) entity.Photo { return s.toDomain() }), nil
}

// List returns one page of photos, newest upload first.
func (r *PhotoRepository) List(ctx context.Context, page value.Page) ([]entity.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photo ORDER BY uploaded_at DESC LIMIT $1 OFFSET $2`

	var schemas []photoSchema
	if err := r.db.SelectContext(ctx, &schemas, query, page.Limit, page.Offset); err != nil {
		return nil, wrapDBError(err, "failed to list photos")
	}

	return lo.Map(schemas, func(s photoSchema, _ int) entity.Photo { return s.toDomain() }), nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo entity.Photo) (entity.Photo, error) {
	query, args, err := sqlx.Named(`
		INSERT INTO photo (review_id, vendor_id, berry_id, photo_url, thumbnail, caption, uploaded_by)
		VALUES (:review_id, :vendor_id, :berry_id, :photo_url, :thumbnail, :caption, :uploaded_by)
		RETURNING `+photoColumns,
		photoSchema{
			ReviewID:   photo.ReviewID,
			VendorID:   photo.VendorID,
			BerryID:    photo.BerryID,
			PhotoURL:   photo.PhotoURL,
			Thumbnail:  photo.Thumbnail,
			Caption:    photo.Caption,
			UploadedBy: photo.UploadedBy,
		},
	)
	if err != nil {
		return entity.Photo{}, wrapDBError(err, "failed to build photo insert")
	}

	var schema photoSchema
	if err = r.db.GetContext(ctx, &schema, r.db.Rebind(query), args...); err != nil {
		return entity.Photo{}, wrapDBError(err, "failed to create photo")
	}

	return schema.toDomain(), nil
}

func (r *PhotoRepository) Update(ctx context.Context, id, owner string, upd entity.PhotoUpdate) (entity.Photo, error) {
	var a assignments

	set(&a, "review_id", upd.ReviewID)
	set(&a, "vendor_id", upd.VendorID)
	set(&a, "berry_id", upd.BerryID)
	set(&a, "photo_url", upd.PhotoURL)
	set(&a, "thumbnail", upd.Thumbnail)
	set(&a, "caption", upd.Caption)

	var schema photoSchema

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwned(ctx, tx, "photo", "photo_id", "uploaded_by", id, owner); err != nil {
			return err
		}

		query, args := `SELECT `+photoColumns+` FROM photo WHERE photo_id = $1`, []any{id}
		if !a.empty() {
			query, args = a.update("photo", "photo_id", id, photoColumns)
		}

		if err := tx.GetContext(ctx, &schema, query, args...); err != nil {
			return wrapDBError(err, "failed to update photo")
		}

		return nil
	})
	if err != nil {
		return entity.Photo{}, err
	}

	return schema.toDomain(), nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id, owner string) (entity.Photo, error) {
	var schema photoSchema

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOwned(ctx, tx, "photo", "photo_id", "uploaded_by", id, owner); err != nil {
			return err
		}

		query := `DELETE FROM photo WHERE photo_id = $1 RETURNING ` + photoColumns
		if err := tx.GetContext(ctx, &schema, query, id); err != nil {
			return wrapDBError(err, "failed to delete photo")
		}

		return nil
	})
	if err != nil {
		return entity.Photo{}, err
	}

	return schema.toDomain(), nil
}
