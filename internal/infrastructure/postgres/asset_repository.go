package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.FixedAssetRepository = (*FixedAssetRepo)(nil)

const assetColumns = `a.id, a.warehouse_id, a.name, a.name_ar, a.category, a.product_code, a.quantity,
	a.acquisition_value, a.acquisition_date, a.is_active, a.created_at, a.updated_at`

// FixedAssetRepo implementación del puerto FixedAssetRepository sobre PostgreSQL.
type FixedAssetRepo struct {
	db Querier
}

// NewFixedAssetRepository construye el adaptador de persistencia para activos fijos.
func NewFixedAssetRepository(db Querier) *FixedAssetRepo {
	return &FixedAssetRepo{db: db}
}

// Create persiste un nuevo activo.
func (r *FixedAssetRepo) Create(ctx context.Context, asset *entity.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (id, warehouse_id, name, name_ar, category, product_code, quantity,
			acquisition_value, acquisition_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		asset.ID, asset.WarehouseID, asset.Name, asset.NameAr, asset.Category, asset.ProductCode,
		asset.Quantity, asset.AcquisitionValue, asset.AcquisitionDate, asset.IsActive,
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product_code %s ya existe", domain.ErrDuplicate, asset.ProductCode)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la bodega %s no existe", domain.ErrInvalidInput, asset.WarehouseID)
		}
		if isDataError(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert fixed asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID.
func (r *FixedAssetRepo) GetByID(ctx context.Context, id string) (*entity.FixedAsset, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + assetColumns + ` FROM fixed_assets a WHERE a.id = $1`
	a, err := scanAsset(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fixed asset: %w", err)
	}
	return a, nil
}

// LockByID bloquea la fila del activo (SELECT ... FOR UPDATE). Solo tiene efecto dentro de una tx.
func (r *FixedAssetRepo) LockByID(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	var locked string
	err := r.db.QueryRow(ctx, `SELECT id FROM fixed_assets WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lock fixed asset: %w", err)
	}
	return true, nil
}

// Update actualiza un activo existente.
func (r *FixedAssetRepo) Update(ctx context.Context, asset *entity.FixedAsset) error {
	query := `
		UPDATE fixed_assets SET warehouse_id = $2, name = $3, name_ar = $4, category = $5,
			product_code = $6, quantity = $7, acquisition_value = $8, acquisition_date = $9,
			is_active = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		asset.ID, asset.WarehouseID, asset.Name, asset.NameAr, asset.Category, asset.ProductCode,
		asset.Quantity, asset.AcquisitionValue, asset.AcquisitionDate, asset.IsActive, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product_code %s ya existe", domain.ErrDuplicate, asset.ProductCode)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la bodega %s no existe", domain.ErrInvalidInput, asset.WarehouseID)
		}
		if isDataError(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update fixed asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista activos ordenados por nombre aplicando los filtros no vacíos.
func (r *FixedAssetRepo) List(ctx context.Context, filter entity.AssetFilter, limit, offset int) ([]*entity.FixedAsset, int, error) {
	if (filter.WarehouseID != "" && !isUUID(filter.WarehouseID)) || (filter.BranchID != "" && !isUUID(filter.BranchID)) {
		return []*entity.FixedAsset{}, 0, nil
	}
	where, args := assetWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM fixed_assets a JOIN warehouses w ON w.id = a.warehouse_id` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count fixed assets: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM fixed_assets a JOIN warehouses w ON w.id = a.warehouse_id%s
		ORDER BY a.name ASC, a.id ASC LIMIT $%d OFFSET $%d`,
		assetColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list fixed assets: %w", err)
	}
	defer rows.Close()

	list := []*entity.FixedAsset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan fixed asset: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Delete elimina un activo; su adjunto se borra en cascada.
func (r *FixedAssetRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM fixed_assets WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el activo tiene registros asociados", domain.ErrConflict)
		}
		return fmt.Errorf("delete fixed asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func assetWhere(f entity.AssetFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.WarehouseID != "" {
		add("a.warehouse_id = $%d", f.WarehouseID)
	}
	if f.BranchID != "" {
		add("w.branch_id = $%d", f.BranchID)
	}
	if f.Category != "" {
		add("a.category = $%d", f.Category)
	}
	if f.Search != "" {
		add("(a.name ILIKE $%[1]d OR a.name_ar ILIKE $%[1]d OR a.product_code ILIKE $%[1]d)", likePattern(f.Search))
	}
	if f.Active != nil {
		add("a.is_active = $%d", *f.Active)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanAsset(row pgx.Row) (*entity.FixedAsset, error) {
	var a entity.FixedAsset
	if err := row.Scan(
		&a.ID, &a.WarehouseID, &a.Name, &a.NameAr, &a.Category, &a.ProductCode, &a.Quantity,
		&a.AcquisitionValue, &a.AcquisitionDate, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
