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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, branch_id, name, name_ar, address, address_ar, capacity, created_at, updated_at`

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	db Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(db Querier) *WarehouseRepo {
	return &WarehouseRepo{db: db}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		warehouse.ID, warehouse.BranchID, warehouse.Name, warehouse.NameAr,
		warehouse.Address, warehouse.AddressAr, warehouse.Capacity,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la sede %s no existe", domain.ErrInvalidInput, warehouse.BranchID)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bodega %s", domain.ErrDuplicate, warehouse.ID)
		}
		if isDataError(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	w, err := scanWarehouse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// Update actualiza una bodega existente (incluida la sede a la que pertenece).
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET branch_id = $2, name = $3, name_ar = $4, address = $5,
			address_ar = $6, capacity = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		warehouse.ID, warehouse.BranchID, warehouse.Name, warehouse.NameAr,
		warehouse.Address, warehouse.AddressAr, warehouse.Capacity, warehouse.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la sede %s no existe", domain.ErrInvalidInput, warehouse.BranchID)
		}
		if isDataError(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista bodegas ordenadas por nombre. branchID vacío lista todas.
func (r *WarehouseRepo) List(ctx context.Context, branchID string, limit, offset int) ([]*entity.Warehouse, int, error) {
	if branchID != "" && !isUUID(branchID) {
		return []*entity.Warehouse{}, 0, nil
	}
	// nil = sin filtro; el parámetro se compara como uuid para usar idx_warehouses_branch_id.
	var branch any
	if branchID != "" {
		branch = branchID
	}
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM warehouses WHERE ($1::uuid IS NULL OR branch_id = $1::uuid)`, branch,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count warehouses: %w", err)
	}
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE ($1::uuid IS NULL OR branch_id = $1::uuid)
		ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, branch, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	list, err := collectWarehouses(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByBranches lista todas las bodegas de las sedes indicadas (sin paginar).
func (r *WarehouseRepo) ListByBranches(ctx context.Context, branchIDs []string) ([]*entity.Warehouse, error) {
	ids := make([]string, 0, len(branchIDs))
	for _, id := range branchIDs {
		if isUUID(id) {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []*entity.Warehouse{}, nil
	}
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE branch_id = ANY($1::uuid[])
		ORDER BY name ASC, id ASC`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list warehouses by branches: %w", err)
	}
	defer rows.Close()
	return collectWarehouses(rows)
}

// Delete elimina una bodega. Si aún tiene activos la FK (RESTRICT) lo impide.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la bodega tiene activos asociados", domain.ErrConflict)
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(
		&w.ID, &w.BranchID, &w.Name, &w.NameAr, &w.Address, &w.AddressAr, &w.Capacity,
		&w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func collectWarehouses(rows pgx.Rows) ([]*entity.Warehouse, error) {
	list := []*entity.Warehouse{}
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
