package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasPgCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, "23503")
}

// isDataError verifica si el valor no cabe en la columna: texto demasiado largo (22001)
// o número fuera de rango (22003).
func isDataError(err error) bool {
	return hasPgCode(err, "22001") || hasPgCode(err, "22003")
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// isUUID evita mandar a PostgreSQL ids que la columna uuid rechazaría con error 22P02.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// likePattern arma el patrón ILIKE escapando los comodines del texto buscado.
func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}
