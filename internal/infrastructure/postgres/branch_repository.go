package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	db Querier
}

// NewBranchRepository construye el adaptador de persistencia para sedes.
func NewBranchRepository(db Querier) *BranchRepo {
	return &BranchRepo{db: db}
}

// Create persiste una nueva sede.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, name, name_ar, address, address_ar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		branch.ID, branch.Name, branch.NameAr, branch.Address, branch.AddressAr,
		branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sede %s", domain.ErrDuplicate, branch.ID)
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		SELECT id, name, name_ar, address, address_ar, created_at, updated_at
		FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.NameAr, &b.Address, &b.AddressAr, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// Update actualiza una sede existente.
func (r *BranchRepo) Update(ctx context.Context, branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $2, name_ar = $3, address = $4, address_ar = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		branch.ID, branch.Name, branch.NameAr, branch.Address, branch.AddressAr, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista sedes ordenadas por nombre con su conteo de bodegas. search filtra por
// nombre o dirección (ILIKE, también sobre las columnas en árabe).
func (r *BranchRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.BranchSummary, int, error) {
	query := `
		SELECT b.id, b.name, b.name_ar, b.address, b.address_ar, b.created_at, b.updated_at,
			(SELECT COUNT(*) FROM warehouses w WHERE w.branch_id = b.id) AS warehouse_count,
			COUNT(*) OVER() AS total
		FROM branches b
		WHERE $1 = '' OR b.name ILIKE $2 OR b.name_ar ILIKE $2 OR b.address ILIKE $2 OR b.address_ar ILIKE $2
		ORDER BY b.name ASC, b.id ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, search, likePattern(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var (
		list  []*entity.BranchSummary
		total int
	)
	for rows.Next() {
		var s entity.BranchSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.NameAr, &s.Address, &s.AddressAr, &s.CreatedAt, &s.UpdatedAt,
			&s.WarehouseCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(list) == 0 && offset > 0 {
		// COUNT(*) OVER() no devuelve filas fuera de rango; el total se consulta aparte.
		if err := r.db.QueryRow(ctx, `
			SELECT COUNT(*) FROM branches b
			WHERE $1 = '' OR b.name ILIKE $2 OR b.name_ar ILIKE $2 OR b.address ILIKE $2 OR b.address_ar ILIKE $2`,
			search, likePattern(search),
		).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count branches: %w", err)
		}
	}
	return list, total, nil
}

// Delete elimina una sede. Si aún tiene bodegas la FK (RESTRICT) lo impide.
func (r *BranchRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la sede tiene bodegas asociadas", domain.ErrConflict)
		}
		return fmt.Errorf("delete branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
