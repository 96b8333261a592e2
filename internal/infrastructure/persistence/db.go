package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"berry_buddy/internal/domain"
	"berry_buddy/pkg/errcodes"
)

// withTx runs fn in a transaction and rolls it back when fn fails.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDBError(err, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr), //nolint:errorlint
				errcodes.Error,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError(err, "failed to commit")
	}

	return nil
}

// wrapDBError maps Postgres error classes onto error kinds: unique and
// foreign key violations are conflicts, malformed or missing values are
// invalid arguments, everything else is internal. The driver's own message
// is the one reported to the client; message is used only when it is empty.
func wrapDBError(err error, message string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		if text := err.Error(); text != "" {
			message = text
		}

		return domain.WrapError(err, errcodes.Error, message)
	}

	appErr := domain.WrapError(err, errcodes.Error, pgErr.Message)

	switch pgErr.Code {
	case "23505", "23503":
		return appErr.WithKind(domain.KindConflict)
	case "22P02", "23502", "23514":
		return appErr.WithKind(domain.KindInvalidArgument)
	default:
		return appErr
	}
}

// lockOwned locks the row idColumn = id of table and checks that ownerColumn
// holds owner. A missing row and a foreign row look the same to the caller.
func lockOwned(ctx context.Context, tx *sqlx.Tx, table, idColumn, ownerColumn, id, owner string) error {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, ownerColumn, table, idColumn) //nolint:gosec

	var current string
	if err := tx.GetContext(ctx, &current, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError(domain.MessageNotFoundOrNotOwner)
		}

		return wrapDBError(err, "failed to check owner")
	}

	if current != owner {
		return domain.NewNotFoundError(domain.MessageNotFoundOrNotOwner)
	}

	return nil
}

// assignments collects the SET list of a partial UPDATE.
type assignments struct {
	columns []string
	args    []any
}

func set[T any](a *assignments, column string, value *T) {
	if value == nil {
		return
	}

	a.args = append(a.args, *value)
	a.columns = append(a.columns, fmt.Sprintf("%s = $%d", column, len(a.args)))
}

func (a *assignments) empty() bool {
	return len(a.columns) == 0
}

// update builds `UPDATE table SET ... WHERE idColumn = $n RETURNING returning`.
func (a *assignments) update(table, idColumn, id, returning string) (string, []any) {
	args := append(a.args, id) //nolint:gocritic

	query := fmt.Sprintf( //nolint:gosec
		`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		table, strings.Join(a.columns, ", "), idColumn, len(args), returning,
	)

	return query, args
}
