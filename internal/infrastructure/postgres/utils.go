package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation en Postgres.
const pgUniqueViolation = "23505"

// uniqueViolation devuelve la constraint violada cuando err es una violación
// de unicidad de Postgres. Los repos la usan para traducir el choque a un
// error de dominio (email duplicado, misma fecha de libro).
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
