package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestPgCodes(t *testing.T) {
	fk := fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})
	uq := &pgconn.PgError{Code: "23505"}

	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isUniqueViolation(uq))
	assert.False(t, isForeignKeyViolation(errors.New("otro error")))
}

func TestIsDataError(t *testing.T) {
	assert.True(t, isDataError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "22001"})))
	assert.True(t, isDataError(&pgconn.PgError{Code: "22003"}))
	assert.False(t, isDataError(&pgconn.PgError{Code: "23505"}))
}

func TestLikePatternEscapaComodines(t *testing.T) {
	assert.Equal(t, `%silla%`, likePattern("silla"))
	assert.Equal(t, `%50\%\_a\\b%`, likePattern(`50%_a\b`))
}

func TestAssetWhere(t *testing.T) {
	where, args := assetWhere(entity.AssetFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	active := true
	where, args = assetWhere(entity.AssetFilter{
		BranchID: "b1",
		Category: "mobiliario",
		Search:   "mesa",
		Active:   &active,
	})
	assert.Equal(t,
		" WHERE w.branch_id = $1 AND a.category = $2 AND (a.name ILIKE $3 OR a.name_ar ILIKE $3 OR a.product_code ILIKE $3) AND a.is_active = $4",
		where)
	assert.Equal(t, []any{"b1", "mobiliario", "%mesa%", true}, args)
}
