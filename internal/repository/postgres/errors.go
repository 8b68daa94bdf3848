package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// isUniqueViolation проверяет, является ли ошибка нарушением unique constraint
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
