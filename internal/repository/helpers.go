package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// deleteByID removes one row from table. A missing row is reported as
// sql.ErrNoRows so callers can tell it apart from store failures.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func placeholder(args []interface{}) string {
	return fmt.Sprintf("$%d", len(args))
}
